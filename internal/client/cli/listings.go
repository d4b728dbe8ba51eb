package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/srstalent/talentconnect/internal/client/listing"
)

// Jobs fetches the jobs collection, prompts for filters, and prints the
// matching listings. A fetch failure degrades to an empty list instead of
// blocking the view.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.service.ListJobs(ctx)
	if err != nil {
		a.logger.Warn(ctx, "jobs fetch failed", "error", err)
		jobs = nil
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs available right now")
		return nil
	}

	q, err := a.promptJobQuery()
	if err != nil {
		return err
	}

	view := listing.NewJobsView(jobs)
	view.Apply(*q)
	items := view.Items()
	if len(items) == 0 {
		fmt.Println("No jobs match your filters")
		return nil
	}
	for _, j := range items {
		remoteMark := ""
		if j.IsRemote {
			remoteMark = " [remote]"
		}
		fmt.Printf("%s  %s at %s, %s%s\n", j.ID, j.Title, j.Company, j.Location, remoteMark)
		if j.Salary != "" {
			fmt.Println("      ", j.Salary)
		}
	}
	return nil
}

func (a *App) promptJobQuery() (*listing.JobQuery, error) {
	text, err := GetSimpleText(a.reader, "Search text (empty for all)", os.Stdout)
	if err != nil {
		return nil, err
	}
	location, err := GetSimpleText(a.reader, "Location (empty for any)", os.Stdout)
	if err != nil {
		return nil, err
	}
	jobTypes, err := GetSimpleText(a.reader, "Job types, comma-separated (empty for any)", os.Stdout)
	if err != nil {
		return nil, err
	}
	remoteOnly, err := GetYesNo(a.reader, "Remote only?", os.Stdout)
	if err != nil {
		return nil, err
	}
	sortKey, err := GetSimpleText(a.reader, "Sort: salary-high, salary-low, newest (empty keeps order)", os.Stdout)
	if err != nil {
		return nil, err
	}

	return &listing.JobQuery{
		Text:       text,
		Location:   location,
		JobTypes:   splitList(jobTypes),
		RemoteOnly: remoteOnly,
		Sort:       sortKey,
	}, nil
}

// Skills fetches the courses collection, prompts for filters, and prints
// the matching courses.
func (a *App) Skills(ctx context.Context) error {
	courses, err := a.service.ListCourses(ctx)
	if err != nil {
		a.logger.Warn(ctx, "courses fetch failed", "error", err)
		courses = nil
	}
	if len(courses) == 0 {
		fmt.Println("No courses available right now")
		return nil
	}

	counts := listing.CategoryCounts(courses)
	categories := make([]string, 0, len(counts))
	for category, n := range counts {
		categories = append(categories, fmt.Sprintf("%s (%d)", category, n))
	}
	sort.Strings(categories)
	fmt.Println("Categories:", strings.Join(categories, ", "))

	text, err := GetSimpleText(a.reader, "Search text (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	freeOnly, err := GetYesNo(a.reader, "Free courses only?", os.Stdout)
	if err != nil {
		return err
	}

	items := listing.FilterCourses(courses, listing.CourseQuery{Text: text, Category: category, FreeOnly: freeOnly})
	if len(items) == 0 {
		fmt.Println("No courses match your filters")
		return nil
	}
	for _, c := range items {
		price := c.Price
		if c.IsFree {
			price = "free"
		}
		fmt.Printf("%s  %s by %s (%s, %s)\n", c.ID, c.Title, c.Instructor, c.Level, price)
	}
	return nil
}

// Apply submits a job application for the given job id.
func (a *App) Apply(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in to apply for jobs")
		return nil
	}
	if len(args) == 0 {
		fmt.Println("Usage: apply <job-id>")
		return nil
	}
	if err := a.service.Apply(ctx, args[0]); err != nil {
		fmt.Println("Application failed:", err)
		return err
	}
	fmt.Println("Application submitted for job", args[0])
	return nil
}

// Applications lists the identity's submitted applications.
func (a *App) Applications(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in to see your applications")
		return nil
	}
	apps, err := a.service.ListApplications(ctx)
	if err != nil {
		fmt.Println("Could not load applications:", err)
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No applications yet")
		return nil
	}
	for _, app := range apps {
		fmt.Printf("%s  %s at %s (%s)\n", app.ID, app.JobTitle, app.Company, app.Status)
	}
	return nil
}

// Enroll enrolls the identity into the given course.
func (a *App) Enroll(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in to enroll in courses")
		return nil
	}
	if len(args) == 0 {
		fmt.Println("Usage: enroll <course-id>")
		return nil
	}
	if err := a.service.Enroll(ctx, args[0]); err != nil {
		fmt.Println("Enrollment failed:", err)
		return err
	}
	fmt.Println("Enrolled in course", args[0])
	return nil
}

// Enrollments lists the identity's course enrollments.
func (a *App) Enrollments(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in to see your enrollments")
		return nil
	}
	enrollments, err := a.service.ListEnrollments(ctx)
	if err != nil {
		fmt.Println("Could not load enrollments:", err)
		return err
	}
	if len(enrollments) == 0 {
		fmt.Println("No enrollments yet")
		return nil
	}
	for _, e := range enrollments {
		fmt.Printf("%s  %s by %s\n", e.ID, e.CourseTitle, e.Instructor)
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
