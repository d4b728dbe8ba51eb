package api

import (
	"time"

	"github.com/srstalent/talentconnect/internal/server/models"
	"github.com/srstalent/talentconnect/internal/server/services"
)

// Wire representations. Field names follow the JSON contract the client
// binds against, camelCase for listing fields.

type userPayload struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata"`
}

func toUserPayload(u *models.User) *userPayload {
	if u == nil {
		return nil
	}
	meta := u.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	return &userPayload{ID: u.ID, Email: u.Email, Metadata: meta}
}

type jobPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Salary          string    `json:"salary"`
	Tags            []string  `json:"tags"`
	IsRemote        bool      `json:"isRemote"`
	PostedAt        time.Time `json:"postedAt"`
}

func toJobPayloads(jobs []*models.Job) []*jobPayload {
	out := make([]*jobPayload, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, &jobPayload{
			ID:              j.ID,
			Title:           j.Title,
			Company:         j.Company,
			Location:        j.Location,
			Description:     j.Description,
			JobType:         j.JobType,
			ExperienceLevel: j.ExperienceLevel,
			Salary:          j.Salary,
			Tags:            j.Tags,
			IsRemote:        j.IsRemote,
			PostedAt:        j.PostedAt,
		})
	}
	return out
}

type coursePayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Instructor  string   `json:"instructor"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Price       string   `json:"price"`
	Tags        []string `json:"tags"`
	IsFree      bool     `json:"isFree"`
}

func toCoursePayloads(courses []*models.Course) []*coursePayload {
	out := make([]*coursePayload, 0, len(courses))
	for _, c := range courses {
		out = append(out, &coursePayload{
			ID:          c.ID,
			Title:       c.Title,
			Instructor:  c.Instructor,
			Description: c.Description,
			Category:    c.Category,
			Level:       c.Level,
			Price:       c.Price,
			Tags:        c.Tags,
			IsFree:      c.IsFree,
		})
	}
	return out
}

type applicationPayload struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

func toApplicationPayloads(views []*services.ApplicationView) []*applicationPayload {
	out := make([]*applicationPayload, 0, len(views))
	for _, v := range views {
		out = append(out, &applicationPayload{
			ID:        v.Application.ID,
			JobID:     v.Application.JobID,
			JobTitle:  v.JobTitle,
			Company:   v.Company,
			Status:    v.Application.Status,
			AppliedAt: v.Application.AppliedAt,
		})
	}
	return out
}

type enrollmentPayload struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	Instructor  string    `json:"instructor"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}

func toEnrollmentPayloads(views []*services.EnrollmentView) []*enrollmentPayload {
	out := make([]*enrollmentPayload, 0, len(views))
	for _, v := range views {
		out = append(out, &enrollmentPayload{
			ID:          v.Enrollment.ID,
			CourseID:    v.Enrollment.CourseID,
			CourseTitle: v.CourseTitle,
			Instructor:  v.Instructor,
			EnrolledAt:  v.Enrollment.EnrolledAt,
		})
	}
	return out
}
