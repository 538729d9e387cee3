// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"errors"
	"strings"
	"time"

	"tasksphere/internal/api"
	"tasksphere/internal/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var budgetPrinter = message.NewPrinter(language.AmericanEnglish)

// BudgetLabel renders a budget the way the dashboard cards show it, e.g. "$50,000".
func BudgetLabel(budget float64) string {
	return "$" + budgetPrinter.Sprint(number.Decimal(budget, number.MaxFractionDigits(2)))
}

// parseDate reads a YYYY-MM-DD value; an empty value yields the zero time so
// that entity validation reports the field as required.
func parseDate(c *dateCollector, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(api.DateLayout, value)
	if err != nil {
		c.fields = append(c.fields, entities.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		return time.Time{}
	}
	return t
}

type dateCollector struct {
	entity string
	fields []entities.FieldError
}

// err reports malformed dates together with every field the entity's own
// validation rejects; a malformed date is not reported a second time as missing.
func (c *dateCollector) err(validate func() error) error {
	if len(c.fields) == 0 {
		return nil
	}
	fields := append([]entities.FieldError(nil), c.fields...)
	var verr *entities.ValidationError
	if errors.As(validate(), &verr) {
		for _, f := range verr.Fields {
			if !c.reported(f.Field) {
				fields = append(fields, f)
			}
		}
	}
	return &entities.ValidationError{Entity: c.entity, Fields: fields}
}

func (c *dateCollector) reported(field string) bool {
	for _, f := range c.fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(api.DateLayout)
}

// FromAPIProjectInput builds a project input, rejecting malformed dates.
func FromAPIProjectInput(src api.ProjectInput) (entities.ProjectInput, error) {
	c := &dateCollector{entity: "project"}
	in := projectInput(c, src)
	return in, c.err(func() error {
		n := in
		n.Normalize()
		return n.Validate()
	})
}

// FromAPIProjectUpdate builds a project update, rejecting malformed dates.
func FromAPIProjectUpdate(src api.ProjectUpdate) (entities.ProjectUpdate, error) {
	c := &dateCollector{entity: "project"}
	upd := entities.ProjectUpdate{ProjectInput: projectInput(c, src.ProjectInput), Progress: src.Progress}
	return upd, c.err(func() error {
		n := upd
		n.Normalize()
		return n.Validate()
	})
}

func projectInput(c *dateCollector, src api.ProjectInput) entities.ProjectInput {
	return entities.ProjectInput{
		Name:        src.Name,
		Description: src.Description,
		Status:      entities.ProjectStatus(src.Status),
		StartDate:   parseDate(c, "start_date", src.StartDate),
		EndDate:     parseDate(c, "end_date", src.EndDate),
		TeamSize:    src.TeamSize,
		Budget:      src.Budget,
	}
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Progress:    p.Progress,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		TeamSize:    p.TeamSize,
		Budget:      p.Budget,
		BudgetLabel: BudgetLabel(p.Budget),
	}
}

// ToAPIProjects maps a slice of projects.
func ToAPIProjects(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToProjectFilter maps list parameters.
func ToProjectFilter(params api.GetProjectsParams) entities.ProjectFilter {
	var filter entities.ProjectFilter
	if params.Status != nil {
		status := entities.ProjectStatus(*params.Status)
		filter.Status = &status
	}
	if params.Q != nil {
		filter.Query = *params.Q
	}
	return filter
}

// FromAPITaskInput builds a task input, rejecting a malformed due date.
func FromAPITaskInput(src api.TaskInput) (entities.TaskInput, error) {
	c := &dateCollector{entity: "task"}
	in := entities.TaskInput{
		Title:       src.Title,
		ProjectID:   src.ProjectId,
		AssigneeID:  src.AssigneeId,
		Priority:    entities.Priority(src.Priority),
		Status:      entities.TaskStatus(src.Status),
		DueDate:     parseDate(c, "due_date", src.DueDate),
		Description: src.Description,
	}
	return in, c.err(func() error {
		n := in
		n.Normalize()
		return n.Validate()
	})
}

// ToAPITask maps a joined task view to transport model.
func ToAPITask(t entities.TaskView) api.Task {
	return api.Task{
		Id:           t.ID,
		Title:        t.Title,
		ProjectId:    t.ProjectID,
		ProjectName:  t.ProjectName,
		AssigneeId:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Priority:     string(t.Priority),
		Status:       string(t.Status),
		DueDate:      formatDate(t.DueDate),
		Description:  t.Description,
	}
}

// ToAPITasks maps a slice of task views.
func ToAPITasks(list []entities.TaskView) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToTaskFilter maps list parameters.
func ToTaskFilter(params api.GetTasksParams) entities.TaskFilter {
	filter := entities.TaskFilter{
		ProjectID:  params.ProjectId,
		AssigneeID: params.AssigneeId,
	}
	if params.Status != nil {
		status := entities.TaskStatus(*params.Status)
		filter.Status = &status
	}
	if params.Priority != nil {
		priority := entities.Priority(*params.Priority)
		filter.Priority = &priority
	}
	if params.Q != nil {
		filter.Query = *params.Q
	}
	return filter
}

// FromAPITeamMemberInput builds a team member input.
func FromAPITeamMemberInput(src api.TeamMemberInput) entities.TeamMemberInput {
	return entities.TeamMemberInput{
		Name:  src.Name,
		Role:  entities.Role(src.Role),
		Email: src.Email,
		Phone: src.Phone,
	}
}

// ToAPITeamMember maps entities.TeamMember to transport model.
func ToAPITeamMember(m entities.TeamMember) api.TeamMember {
	return api.TeamMember{
		Id:     m.ID,
		Name:   m.Name,
		Role:   string(m.Role),
		Avatar: m.Avatar,
		Email:  m.Email,
		Phone:  m.Phone,
	}
}

// ToAPITeamMembers maps a slice of team members.
func ToAPITeamMembers(list []entities.TeamMember) []api.TeamMember {
	res := make([]api.TeamMember, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPITeamMember(m))
	}
	return res
}

// FromAPISettings builds settings from transport model.
func FromAPISettings(src api.Settings) entities.Settings {
	return entities.Settings{
		Theme:              entities.Theme(src.Theme),
		EmailNotifications: src.EmailNotifications,
		PushNotifications:  src.PushNotifications,
		TaskReminders:      src.TaskReminders,
		TwoFactorAuth:      src.TwoFactorAuth,
		SessionTimeout:     entities.SessionTimeout(src.SessionTimeout),
		AutoBackup:         src.AutoBackup,
		DataRetention:      entities.DataRetention(src.DataRetention),
	}
}

// ToAPISettings maps settings to transport model.
func ToAPISettings(s entities.Settings) api.Settings {
	return api.Settings{
		Theme:              string(s.Theme),
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		TaskReminders:      s.TaskReminders,
		TwoFactorAuth:      s.TwoFactorAuth,
		SessionTimeout:     string(s.SessionTimeout),
		AutoBackup:         s.AutoBackup,
		DataRetention:      string(s.DataRetention),
	}
}

// ToAPIBuckets keeps bucket order.
func ToAPIBuckets(d entities.Distribution) []api.Bucket {
	res := make([]api.Bucket, 0, len(d))
	for _, b := range d {
		res = append(res, api.Bucket{Label: b.Label, Count: b.Count})
	}
	return res
}

// ToAPISummary maps the headline metrics.
func ToAPISummary(s entities.SummaryMetrics) api.SummaryMetrics {
	return api.SummaryMetrics{
		ProjectCount:       s.ProjectCount,
		ActiveProjectCount: s.ActiveProjectCount,
		TaskCount:          s.TaskCount,
		CompletedTaskCount: s.CompletedTaskCount,
		CompletionRate:     s.CompletionRate,
		TeamMemberCount:    s.TeamMemberCount,
	}
}

// ToAPIDashboard maps the landing view aggregates.
func ToAPIDashboard(d entities.Dashboard) api.Dashboard {
	return api.Dashboard{
		Summary:        ToAPISummary(d.Summary),
		ProjectStatus:  ToAPIBuckets(d.ProjectStatus),
		TaskPriority:   ToAPIBuckets(d.TaskPriority),
		RecentProjects: ToAPIProjects(d.RecentProjects),
	}
}

// ToAPIAnalytics maps the analytics view aggregates.
func ToAPIAnalytics(a entities.Analytics) api.Analytics {
	points := make([]api.ProgressPoint, 0, len(a.ProjectProgress))
	for _, p := range a.ProjectProgress {
		points = append(points, api.ProgressPoint{
			ProjectId: p.ProjectID,
			Project:   p.Project,
			Progress:  p.Progress,
			Status:    string(p.Status),
		})
	}
	return api.Analytics{
		ProjectProgress: points,
		TaskStatus:      ToAPIBuckets(a.TaskStatus),
		Workload:        ToAPIBuckets(a.Workload),
	}
}

// ToAPIFieldErrors lists the rejected fields of a validation error.
func ToAPIFieldErrors(fields []entities.FieldError) []api.FieldError {
	res := make([]api.FieldError, 0, len(fields))
	for _, f := range fields {
		res = append(res, api.FieldError{Field: f.Field, Message: f.Message})
	}
	return res
}
