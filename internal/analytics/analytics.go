// Package analytics derives dashboard metrics from a session snapshot.
//
// Every function is pure: the same input yields the same output, including the
// order of distribution buckets, which follows the first appearance of each
// label in the input.
package analytics

import (
	"strconv"

	"tasksphere/internal/entities"
)

func countBy[T any](items []T, label func(T) string) entities.Distribution {
	dist := entities.Distribution{}
	index := make(map[string]int, 4)
	for _, item := range items {
		l := label(item)
		if i, ok := index[l]; ok {
			dist[i].Count++
			continue
		}
		index[l] = len(dist)
		dist = append(dist, entities.Bucket{Label: l, Count: 1})
	}
	return dist
}

// CountByStatus groups projects by status.
func CountByStatus(projects []entities.Project) entities.Distribution {
	return countBy(projects, func(p entities.Project) string { return string(p.Status) })
}

// CountByPriority groups tasks by priority.
func CountByPriority(tasks []entities.Task) entities.Distribution {
	return countBy(tasks, func(t entities.Task) string { return string(t.Priority) })
}

// CountByTaskStatus groups tasks by status.
func CountByTaskStatus(tasks []entities.Task) entities.Distribution {
	return countBy(tasks, func(t entities.Task) string { return string(t.Status) })
}

// WorkloadByAssignee counts tasks per assignee, labelled with the member's
// current name. Assignees missing from members are labelled "#<id>".
func WorkloadByAssignee(tasks []entities.Task, members []entities.TeamMember) entities.Distribution {
	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	dist := entities.Distribution{}
	index := make(map[int64]int, len(members))
	for _, t := range tasks {
		if i, ok := index[t.AssigneeID]; ok {
			dist[i].Count++
			continue
		}
		label, ok := names[t.AssigneeID]
		if !ok {
			label = "#" + strconv.FormatInt(t.AssigneeID, 10)
		}
		index[t.AssigneeID] = len(dist)
		dist = append(dist, entities.Bucket{Label: label, Count: 1})
	}
	return dist
}

// CompletionRate returns the percentage of completed tasks, 0 for no tasks.
func CompletionRate(tasks []entities.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	return float64(completed(tasks)) / float64(len(tasks)) * 100
}

func completed(tasks []entities.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == entities.TaskCompleted {
			n++
		}
	}
	return n
}

// Summarize builds the headline metrics of the dashboard.
func Summarize(s entities.Snapshot) entities.SummaryMetrics {
	active := 0
	for _, p := range s.Projects {
		if p.Status == entities.ProjectActive {
			active++
		}
	}
	return entities.SummaryMetrics{
		ProjectCount:       len(s.Projects),
		ActiveProjectCount: active,
		TaskCount:          len(s.Tasks),
		CompletedTaskCount: completed(s.Tasks),
		CompletionRate:     CompletionRate(s.Tasks),
		TeamMemberCount:    len(s.Members),
	}
}

// ProjectProgress lists the progress of every project in input order.
func ProjectProgress(projects []entities.Project) []entities.ProgressPoint {
	points := make([]entities.ProgressPoint, 0, len(projects))
	for _, p := range projects {
		points = append(points, entities.ProgressPoint{
			ProjectID: p.ID,
			Project:   p.Name,
			Progress:  p.Progress,
			Status:    p.Status,
		})
	}
	return points
}

// RecentProjects returns at most n leading projects.
func RecentProjects(projects []entities.Project, n int) []entities.Project {
	if n < 0 {
		n = 0
	}
	if n > len(projects) {
		n = len(projects)
	}
	out := make([]entities.Project, n)
	copy(out, projects[:n])
	return out
}

// BuildDashboard assembles the landing view aggregates.
func BuildDashboard(s entities.Snapshot, recent int) entities.Dashboard {
	return entities.Dashboard{
		Summary:        Summarize(s),
		ProjectStatus:  CountByStatus(s.Projects),
		TaskPriority:   CountByPriority(s.Tasks),
		RecentProjects: RecentProjects(s.Projects, recent),
	}
}

// BuildAnalytics assembles the analytics view aggregates.
func BuildAnalytics(s entities.Snapshot) entities.Analytics {
	return entities.Analytics{
		ProjectProgress: ProjectProgress(s.Projects),
		TaskStatus:      CountByTaskStatus(s.Tasks),
		Workload:        WorkloadByAssignee(s.Tasks, s.Members),
	}
}
