// Package api defines the HTTP contract of the dashboard: request and response
// bodies, error codes and route registration.
package api

import "time"

// SessionHeader carries the session id on every entity request.
const SessionHeader = "X-Session-ID"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponseErrorCode classifies failures for clients.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INTERNAL          ErrorResponseErrorCode = "INTERNAL"
	INVALIDARGUMENT   ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND          ErrorResponseErrorCode = "NOT_FOUND"
	REFERENCENOTFOUND ErrorResponseErrorCode = "REFERENCE_NOT_FOUND"
	SESSIONNOTFOUND   ErrorResponseErrorCode = "SESSION_NOT_FOUND"
	VALIDATION        ErrorResponseErrorCode = "VALIDATION"
)

// FieldError names one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorDetail is the body of ErrorResponse.
type ErrorDetail struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
	Fields  []FieldError           `json:"fields,omitempty"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Session defines model for Session.
type Session struct {
	SessionId string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Project defines model for Project.
type Project struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TeamSize    int     `json:"team_size"`
	Budget      float64 `json:"budget"`
	BudgetLabel string  `json:"budget_label"`
}

// ProjectInput is the body of POST /projects.
type ProjectInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TeamSize    int     `json:"team_size"`
	Budget      float64 `json:"budget"`
}

// ProjectUpdate is the body of PUT /projects/{id}.
type ProjectUpdate struct {
	ProjectInput
	Progress int `json:"progress"`
}

// Task defines model for Task.
type Task struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	ProjectId    int64  `json:"project_id"`
	ProjectName  string `json:"project_name"`
	AssigneeId   int64  `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	DueDate      string `json:"due_date"`
	Description  string `json:"description"`
}

// TaskInput is the body of POST /tasks.
type TaskInput struct {
	Title       string `json:"title"`
	ProjectId   int64  `json:"project_id"`
	AssigneeId  int64  `json:"assignee_id"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
}

// TaskStatusUpdate is the body of POST /tasks/{id}/status.
type TaskStatusUpdate struct {
	Status string `json:"status"`
}

// TeamMember defines model for TeamMember.
type TeamMember struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// TeamMemberInput is the body of POST /team.
type TeamMemberInput struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TeamMemberRename is the body of POST /team/{id}/rename.
type TeamMemberRename struct {
	Name string `json:"name"`
}

// Settings defines model for Settings.
type Settings struct {
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	TaskReminders      bool   `json:"task_reminders"`
	TwoFactorAuth      bool   `json:"two_factor_auth"`
	SessionTimeout     string `json:"session_timeout"`
	AutoBackup         bool   `json:"auto_backup"`
	DataRetention      string `json:"data_retention"`
}

// Bucket is one labelled count of a chart.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SummaryMetrics defines model for SummaryMetrics.
type SummaryMetrics struct {
	ProjectCount       int     `json:"project_count"`
	ActiveProjectCount int     `json:"active_project_count"`
	TaskCount          int     `json:"task_count"`
	CompletedTaskCount int     `json:"completed_task_count"`
	CompletionRate     float64 `json:"completion_rate"`
	TeamMemberCount    int     `json:"team_member_count"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Summary        SummaryMetrics `json:"summary"`
	ProjectStatus  []Bucket       `json:"project_status"`
	TaskPriority   []Bucket       `json:"task_priority"`
	RecentProjects []Project      `json:"recent_projects"`
}

// ProgressPoint is one bar of the project progress chart.
type ProgressPoint struct {
	ProjectId int64  `json:"project_id"`
	Project   string `json:"project"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
}

// Analytics defines model for Analytics.
type Analytics struct {
	ProjectProgress []ProgressPoint `json:"project_progress"`
	TaskStatus      []Bucket        `json:"task_status"`
	Workload        []Bucket        `json:"workload"`
}

// GetProjectsParams defines parameters for GetProjects.
type GetProjectsParams struct {
	Status *string
	Q      *string
}

// GetTasksParams defines parameters for GetTasks.
type GetTasksParams struct {
	ProjectId  *int64
	AssigneeId *int64
	Status     *string
	Priority   *string
	Q          *string
}
