package listing

import "github.com/srstalent/talentconnect/internal/client/models"

// JobsView pairs the fetched jobs collection with the current query so a
// view can re-filter and reset without refetching.
type JobsView struct {
	all   []*models.Job
	query JobQuery
	items []*models.Job
}

func NewJobsView(jobs []*models.Job) *JobsView {
	v := &JobsView{all: jobs}
	v.Reset()
	return v
}

// Apply installs q and recomputes the visible items.
func (v *JobsView) Apply(q JobQuery) {
	v.query = q
	v.items = FilterJobs(v.all, q)
}

// Reset drops the query and restores the originally fetched order.
func (v *JobsView) Reset() {
	v.Apply(JobQuery{})
}

func (v *JobsView) Query() JobQuery      { return v.query }
func (v *JobsView) Items() []*models.Job { return v.items }

// CoursesView pairs the fetched courses collection with the current query.
type CoursesView struct {
	all   []*models.Course
	query CourseQuery
	items []*models.Course
}

func NewCoursesView(courses []*models.Course) *CoursesView {
	v := &CoursesView{all: courses}
	v.Reset()
	return v
}

func (v *CoursesView) Apply(q CourseQuery) {
	v.query = q
	v.items = FilterCourses(v.all, q)
}

func (v *CoursesView) Reset() {
	v.Apply(CourseQuery{})
}

func (v *CoursesView) Query() CourseQuery      { return v.query }
func (v *CoursesView) Items() []*models.Course { return v.items }
