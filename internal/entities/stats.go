// Package entities contains core business entities.
package entities

// Bucket is one labelled count of a distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Distribution is a list of buckets in first-seen label order.
type Distribution []Bucket

// Count returns the count stored under label, zero when absent.
func (d Distribution) Count(label string) int {
	for _, b := range d {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

// Total sums every bucket.
func (d Distribution) Total() int {
	total := 0
	for _, b := range d {
		total += b.Count
	}
	return total
}

// SummaryMetrics is the headline block of the dashboard.
type SummaryMetrics struct {
	ProjectCount       int     `json:"project_count"`
	ActiveProjectCount int     `json:"active_project_count"`
	TaskCount          int     `json:"task_count"`
	CompletedTaskCount int     `json:"completed_task_count"`
	CompletionRate     float64 `json:"completion_rate"`
	TeamMemberCount    int     `json:"team_member_count"`
}

// ProgressPoint is one bar of the project progress chart.
type ProgressPoint struct {
	ProjectID int64         `json:"project_id"`
	Project   string        `json:"project"`
	Progress  int           `json:"progress"`
	Status    ProjectStatus `json:"status"`
}

// Dashboard aggregates everything the landing view renders.
type Dashboard struct {
	Summary        SummaryMetrics
	ProjectStatus  Distribution
	TaskPriority   Distribution
	RecentProjects []Project
}

// Analytics aggregates everything the analytics view renders.
type Analytics struct {
	ProjectProgress []ProgressPoint
	TaskStatus      Distribution
	Workload        Distribution
}
