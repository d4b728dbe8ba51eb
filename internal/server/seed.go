package server

import (
	"time"

	"github.com/srstalent/talentconnect/internal/server/models"
)

// SeedJobs returns the demo job catalog used when no database is
// configured.
func SeedJobs() []*models.Job {
	posted := time.Date(2025, time.August, 11, 9, 0, 0, 0, time.UTC)
	return []*models.Job{
		{
			ID:              "job-frontend-blr",
			Title:           "Frontend Developer",
			Company:         "PixelWorks",
			Location:        "Bengaluru",
			Description:     "Build dashboards in React with a design-systems team.",
			JobType:         "Full-time",
			ExperienceLevel: "Mid",
			Salary:          "₹6,00,000 - ₹9,00,000",
			Tags:            []string{"react", "typescript", "css"},
			PostedAt:        posted,
		},
		{
			ID:              "job-data-remote",
			Title:           "Data Analyst",
			Company:         "Insightly",
			Location:        "Remote",
			Description:     "Own reporting pipelines and ad-hoc analysis for growth.",
			JobType:         "Full-time",
			ExperienceLevel: "Entry",
			Salary:          "₹4,50,000 - ₹6,50,000",
			Tags:            []string{"sql", "python"},
			IsRemote:        true,
			PostedAt:        posted.AddDate(0, 0, 3),
		},
		{
			ID:              "job-backend-hyd",
			Title:           "Backend Engineer",
			Company:         "CloudNine",
			Location:        "Hyderabad",
			Description:     "Design and operate Go services backing the mobile apps.",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			Salary:          "Competitive",
			Tags:            []string{"go", "postgres", "aws"},
			PostedAt:        posted.AddDate(0, 0, 7),
		},
	}
}

// SeedCourses returns the demo course catalog used when no database is
// configured.
func SeedCourses() []*models.Course {
	return []*models.Course{
		{
			ID:          "course-web-101",
			Title:       "Web Development Bootcamp",
			Instructor:  "Asha Menon",
			Description: "HTML, CSS, and JavaScript from zero to a deployed site.",
			Category:    "Programming",
			Level:       "Beginner",
			Price:       "Free",
			Tags:        []string{"html", "css", "javascript"},
			IsFree:      true,
		},
		{
			ID:          "course-data-sql",
			Title:       "SQL for Analysts",
			Instructor:  "Rohit Sharma",
			Description: "Window functions, joins, and query tuning on real datasets.",
			Category:    "Data",
			Level:       "Intermediate",
			Price:       "₹1,999",
			Tags:        []string{"sql", "analytics"},
		},
	}
}
