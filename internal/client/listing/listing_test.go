package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/srstalent/talentconnect/internal/client/models"
)

func sampleJobs() []*models.Job {
	return []*models.Job{
		{
			ID: "j1", Title: "Frontend Developer", Company: "Acme", Location: "Pune",
			JobType: "Full-time", ExperienceLevel: "Mid", Salary: "₹6,00,000 - ₹9,00,000",
			Tags: []string{"react", "javascript"}, IsRemote: false,
			PostedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "j2", Title: "Data Analyst", Company: "Globex", Location: "Remote, India",
			JobType: "Full-time", ExperienceLevel: "Entry", Salary: "₹4,50,000 - ₹6,50,000",
			Tags: []string{"sql", "python"}, IsRemote: true,
			PostedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "j3", Title: "Backend Engineer", Company: "Initech", Location: "Bengaluru",
			JobType: "Contract", ExperienceLevel: "Senior", Salary: "Competitive",
			Tags: []string{"go", "postgres"}, IsRemote: false,
			PostedAt: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ids(jobs []*models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestFilterJobs_EmptyQueryPreservesOrderAndContents(t *testing.T) {
	jobs := sampleJobs()
	got := FilterJobs(jobs, JobQuery{})
	require.Equal(t, []string{"j1", "j2", "j3"}, ids(got))
}

func TestFilterJobs_TextSearchMatchesSingleItem(t *testing.T) {
	got := FilterJobs(sampleJobs(), JobQuery{Text: "frontend"})
	require.Equal(t, []string{"j1"}, ids(got))
}

func TestFilterJobs_TextSearchCoversCompanyDescriptionTags(t *testing.T) {
	jobs := sampleJobs()
	require.Equal(t, []string{"j2"}, ids(FilterJobs(jobs, JobQuery{Text: "globex"})))
	require.Equal(t, []string{"j3"}, ids(FilterJobs(jobs, JobQuery{Text: "postgres"})))
	require.Equal(t, []string{"j1"}, ids(FilterJobs(jobs, JobQuery{Text: "REACT"})))
}

func TestFilterJobs_LocationSubstring(t *testing.T) {
	got := FilterJobs(sampleJobs(), JobQuery{Location: "bengal"})
	require.Equal(t, []string{"j3"}, ids(got))
}

func TestFilterJobs_FacetsOrWithinAndAcross(t *testing.T) {
	jobs := sampleJobs()

	got := FilterJobs(jobs, JobQuery{JobTypes: []string{"Full-time", "Contract"}})
	require.Equal(t, []string{"j1", "j2", "j3"}, ids(got))

	got = FilterJobs(jobs, JobQuery{JobTypes: []string{"Full-time"}, ExperienceLevels: []string{"Entry"}})
	require.Equal(t, []string{"j2"}, ids(got))
}

func TestFilterJobs_RemoteOnly(t *testing.T) {
	got := FilterJobs(sampleJobs(), JobQuery{RemoteOnly: true})
	require.Equal(t, []string{"j2"}, ids(got))
}

func TestFilterJobs_SalaryHighOrdersByUpperBound(t *testing.T) {
	jobs := []*models.Job{
		{ID: "low", Salary: "₹4,50,000 - ₹6,50,000"},
		{ID: "high", Salary: "₹6,00,000 - ₹9,00,000"},
	}
	got := FilterJobs(jobs, JobQuery{Sort: SortSalaryHigh})
	require.Equal(t, []string{"high", "low"}, ids(got))
}

func TestFilterJobs_SalaryLowOrdersByLowerBound(t *testing.T) {
	got := FilterJobs(sampleJobs(), JobQuery{Sort: SortSalaryLow})
	require.Equal(t, "j2", got[0].ID)
	require.Equal(t, "j1", got[1].ID)
}

func TestFilterJobs_UnparseableSalaryKeepsInputOrder(t *testing.T) {
	jobs := []*models.Job{
		{ID: "a", Salary: "Competitive"},
		{ID: "b", Salary: "Negotiable"},
	}
	got := FilterJobs(jobs, JobQuery{Sort: SortSalaryHigh})
	require.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterJobs_Newest(t *testing.T) {
	got := FilterJobs(sampleJobs(), JobQuery{Sort: SortNewest})
	require.Equal(t, []string{"j2", "j1", "j3"}, ids(got))
}

func TestFilterJobs_Idempotent(t *testing.T) {
	queries := []JobQuery{
		{},
		{Text: "frontend"},
		{RemoteOnly: true, Sort: SortSalaryHigh},
		{JobTypes: []string{"Full-time"}, Location: "pune"},
	}
	for _, q := range queries {
		once := FilterJobs(sampleJobs(), q)
		twice := FilterJobs(once, q)
		require.Equal(t, ids(once), ids(twice))
	}
}

func TestFilterJobs_InputNeverMutated(t *testing.T) {
	jobs := sampleJobs()
	_ = FilterJobs(jobs, JobQuery{Sort: SortSalaryHigh, Text: "e"})
	require.Equal(t, []string{"j1", "j2", "j3"}, ids(jobs))
}

func TestSalaryBounds(t *testing.T) {
	tests := []struct {
		in       string
		min, max int64
		ok       bool
	}{
		{"₹6,00,000 - ₹9,00,000", 600000, 900000, true},
		{"₹4,50,000 - ₹6,50,000", 450000, 650000, true},
		{"$80,000", 80000, 80000, true},
		{"up to 12,00,000 INR", 1200000, 1200000, true},
		{"Competitive", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		min, max, ok := salaryBounds(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		if ok {
			require.Equal(t, tt.min, min, tt.in)
			require.Equal(t, tt.max, max, tt.in)
		}
	}
}

func sampleCourses() []*models.Course {
	return []*models.Course{
		{ID: "c1", Title: "React for Beginners", Category: "Web Development", Level: "Beginner", IsFree: true, Tags: []string{"react"}},
		{ID: "c2", Title: "Advanced SQL", Category: "Data", Level: "Advanced", IsFree: false, Tags: []string{"sql"}},
		{ID: "c3", Title: "Go Microservices", Category: "Web Development", Level: "Intermediate", IsFree: false, Tags: []string{"go", "grpc"}},
	}
}

func courseIDs(cs []*models.Course) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterCourses(t *testing.T) {
	cs := sampleCourses()

	require.Equal(t, []string{"c1", "c2", "c3"}, courseIDs(FilterCourses(cs, CourseQuery{})))
	require.Equal(t, []string{"c2"}, courseIDs(FilterCourses(cs, CourseQuery{Text: "sql"})))
	require.Equal(t, []string{"c1", "c3"}, courseIDs(FilterCourses(cs, CourseQuery{Category: "web development"})))
	require.Equal(t, []string{"c1"}, courseIDs(FilterCourses(cs, CourseQuery{FreeOnly: true})))
	require.Equal(t, []string{"c3"}, courseIDs(FilterCourses(cs, CourseQuery{Category: "Web Development", Level: "Intermediate"})))
}

func TestCategoryCounts(t *testing.T) {
	cs := append(sampleCourses(), &models.Course{ID: "c4", Title: "Untagged"})

	counts := CategoryCounts(cs)
	require.Equal(t, map[string]int{
		"Web Development": 2,
		"Data":            1,
		"Other":           1,
	}, counts)
}

func TestJobsView_ResetRestoresFetchedOrder(t *testing.T) {
	v := NewJobsView(sampleJobs())
	v.Apply(JobQuery{Text: "frontend"})
	require.Equal(t, []string{"j1"}, ids(v.Items()))

	v.Reset()
	require.Equal(t, []string{"j1", "j2", "j3"}, ids(v.Items()))
	require.Equal(t, JobQuery{}, v.Query())
}
