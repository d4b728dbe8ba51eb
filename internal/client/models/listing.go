package models

import "time"

// Job is a single job listing as served by the jobs collection.
// Salary is a free-text range like "₹6,00,000 - ₹9,00,000"; numeric bounds
// are parsed out only when sorting.
type Job struct {
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

// Course is a single skill-development course listing.
type Course struct {
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

// Application is a job application submitted by the current identity.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

// Enrollment is a course enrollment of the current identity.
type Enrollment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	Instructor  string    `json:"instructor"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}
