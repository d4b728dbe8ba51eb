// Package listing filters and sorts in-memory job and course collections.
// Everything here is pure: the fetched collection is never mutated and the
// same query always yields the same result.
package listing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/srstalent/talentconnect/internal/client/models"
)

// Sort keys for job results.
const (
	SortNone       = ""
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
	SortNewest     = "newest"
)

// JobQuery describes one filtering pass over the jobs collection. Facet
// slices use inclusive OR within the facet; facets combine with AND. Zero
// value matches everything in the original order.
type JobQuery struct {
	Text             string
	Location         string
	JobTypes         []string
	ExperienceLevels []string
	RemoteOnly       bool
	Sort             string
}

// CourseQuery describes one filtering pass over the courses collection.
type CourseQuery struct {
	Text     string
	Category string
	Level    string
	FreeOnly bool
}

// FilterJobs returns the jobs matching q, sorted per q.Sort. The input
// slice is never modified.
func FilterJobs(jobs []*models.Job, q JobQuery) []*models.Job {
	out := make([]*models.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchJob(j, q) {
			out = append(out, j)
		}
	}
	sortJobs(out, q.Sort)
	return out
}

func matchJob(j *models.Job, q JobQuery) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !containsFold(text, j.Title, j.Company, j.Description) && !anyTagMatches(text, j.Tags) {
			return false
		}
	}
	if loc := strings.ToLower(strings.TrimSpace(q.Location)); loc != "" {
		if !strings.Contains(strings.ToLower(j.Location), loc) {
			return false
		}
	}
	if len(q.JobTypes) > 0 && !containsValue(q.JobTypes, j.JobType) {
		return false
	}
	if len(q.ExperienceLevels) > 0 && !containsValue(q.ExperienceLevels, j.ExperienceLevel) {
		return false
	}
	if q.RemoteOnly && !j.IsRemote {
		return false
	}
	return true
}

func sortJobs(jobs []*models.Job, key string) {
	switch key {
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(a, b int) bool {
			_, maxA, okA := salaryBounds(jobs[a].Salary)
			_, maxB, okB := salaryBounds(jobs[b].Salary)
			if !okA || !okB {
				return false
			}
			return maxA > maxB
		})
	case SortSalaryLow:
		sort.SliceStable(jobs, func(a, b int) bool {
			minA, _, okA := salaryBounds(jobs[a].Salary)
			minB, _, okB := salaryBounds(jobs[b].Salary)
			if !okA || !okB {
				return false
			}
			return minA < minB
		})
	case SortNewest:
		sort.SliceStable(jobs, func(a, b int) bool {
			return jobs[a].PostedAt.After(jobs[b].PostedAt)
		})
	}
}

// FilterCourses returns the courses matching q in their original order.
// The input slice is never modified.
func FilterCourses(courses []*models.Course, q CourseQuery) []*models.Course {
	out := make([]*models.Course, 0, len(courses))
	for _, c := range courses {
		if matchCourse(c, q) {
			out = append(out, c)
		}
	}
	return out
}

// CategoryCounts tallies how many courses fall into each category. Courses
// without a category are counted under "Other".
func CategoryCounts(courses []*models.Course) map[string]int {
	counts := make(map[string]int, 8)
	for _, c := range courses {
		category := c.Category
		if category == "" {
			category = "Other"
		}
		counts[category]++
	}
	return counts
}

func matchCourse(c *models.Course, q CourseQuery) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !containsFold(text, c.Title, c.Description) && !anyTagMatches(text, c.Tags) {
			return false
		}
	}
	if q.Category != "" && !strings.EqualFold(c.Category, q.Category) {
		return false
	}
	if q.Level != "" && !strings.EqualFold(c.Level, q.Level) {
		return false
	}
	if q.FreeOnly && !c.IsFree {
		return false
	}
	return true
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func anyTagMatches(needle string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

var numberRun = regexp.MustCompile(`[0-9][0-9,]*`)

// salaryBounds extracts the numeric bounds from a free-text salary range
// like "₹6,00,000 - ₹9,00,000". Currency symbols and locale separators are
// discarded. A single number serves as both bounds; ok is false when no
// number is present.
func salaryBounds(s string) (min, max int64, ok bool) {
	runs := numberRun.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, 0, false
	}
	first := runs[0]
	last := runs[len(runs)-1]
	min, err := strconv.ParseInt(strings.ReplaceAll(first, ",", ""), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.ParseInt(strings.ReplaceAll(last, ",", ""), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if max < min {
		min, max = max, min
	}
	return min, max, true
}
