package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validProjectInput() ProjectInput {
	return ProjectInput{
		Name:      "Billing",
		Status:    ProjectActive,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		TeamSize:  3,
		Budget:    1000,
	}
}

func TestProjectInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectInput)
		field  string
	}{
		{name: "empty_name", mutate: func(in *ProjectInput) { in.Name = "" }, field: "name"},
		{name: "bad_status", mutate: func(in *ProjectInput) { in.Status = "Archived" }, field: "status"},
		{name: "zero_team", mutate: func(in *ProjectInput) { in.TeamSize = 0 }, field: "team_size"},
		{name: "huge_team", mutate: func(in *ProjectInput) { in.TeamSize = 21 }, field: "team_size"},
		{name: "negative_budget", mutate: func(in *ProjectInput) { in.Budget = -1 }, field: "budget"},
		{name: "missing_start", mutate: func(in *ProjectInput) { in.StartDate = time.Time{} }, field: "start_date"},
		{name: "end_before_start", mutate: func(in *ProjectInput) { in.EndDate = in.StartDate.AddDate(0, 0, -1) }, field: "end_date"},
	}

	require.NoError(t, validProjectInput().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProjectInput()
			tt.mutate(&in)

			err := in.Validate()
			require.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tt.field, ve.Fields[0].Field)
		})
	}
}

func TestProjectUpdateValidateProgress(t *testing.T) {
	upd := ProjectUpdate{ProjectInput: validProjectInput(), Progress: 100}
	require.NoError(t, upd.Validate())

	upd.Progress = 101
	require.ErrorIs(t, upd.Validate(), ErrValidation)

	upd.Progress = -1
	require.ErrorIs(t, upd.Validate(), ErrValidation)
}

func TestValidationErrorListsAllFields(t *testing.T) {
	err := ProjectInput{}.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "project", ve.Entity)
	require.GreaterOrEqual(t, len(ve.Fields), 4)
	require.Contains(t, err.Error(), "name is required")
}

func TestTeamMemberInputValidate(t *testing.T) {
	in := TeamMemberInput{Name: "Ada Lovelace", Role: RoleDataAnalyst, Email: "ada@example.com"}
	require.NoError(t, in.Validate())

	in.Email = "not-an-email"
	require.ErrorIs(t, in.Validate(), ErrValidation)

	require.ErrorIs(t, TeamMemberInput{Role: RoleDataAnalyst}.Validate(), ErrValidation)
	require.ErrorIs(t, TeamMemberInput{Name: "Ada", Role: "Wizard"}.Validate(), ErrValidation)
}

func TestInitials(t *testing.T) {
	require.Equal(t, "AL", Initials("Ada Lovelace"))
	require.Equal(t, "JRT", Initials("  John  Ronald\tTolkien "))
	require.Equal(t, "ÉZ", Initials("Émile Zola"))
	require.Equal(t, "", Initials(""))
}

func TestTaskFilterMatches(t *testing.T) {
	task := Task{ID: 1, Title: "Setup Database Schema", ProjectID: 2, AssigneeID: 3, Priority: PriorityHigh, Status: TaskCompleted}

	pid, other := int64(2), int64(9)
	status := TaskCompleted

	require.True(t, TaskFilter{}.Matches(task))
	require.True(t, TaskFilter{ProjectID: &pid, Status: &status}.Matches(task))
	require.False(t, TaskFilter{AssigneeID: &other}.Matches(task))
	require.True(t, TaskFilter{Query: "database"}.Matches(task))
	require.False(t, TaskFilter{Query: "mobile"}.Matches(task))
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	require.Equal(t, 15*time.Minute, s.SessionTimeout.Duration())

	s.Theme = "Neon"
	s.DataRetention = "Never"
	err := s.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 2)
}

func TestDistributionHelpers(t *testing.T) {
	d := Distribution{{Label: "Active", Count: 2}, {Label: "Completed", Count: 1}}
	require.Equal(t, 2, d.Count("Active"))
	require.Equal(t, 0, d.Count("Pending"))
	require.Equal(t, 3, d.Total())
}
