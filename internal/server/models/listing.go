package models

import "time"

// Job is a published job listing.
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Description     string
	JobType         string
	ExperienceLevel string
	Salary          string
	Tags            []string
	IsRemote        bool
	PostedAt        time.Time
}

// Course is a published skill-development course.
type Course struct {
	ID          string
	Title       string
	Instructor  string
	Description string
	Category    string
	Level       string
	Price       string
	Tags        []string
	IsFree      bool
}

// Application links a user to a job they applied for.
type Application struct {
	ID        string
	UserID    string
	JobID     string
	Status    string
	AppliedAt time.Time
}

// Enrollment links a user to a course they enrolled in.
type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	EnrolledAt time.Time
}
