package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasksphere/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func projectInput(name string, status entities.ProjectStatus) entities.ProjectInput {
	return entities.ProjectInput{
		Name:      name,
		Status:    status,
		StartDate: day(2024, 1, 1),
		EndDate:   day(2024, 6, 1),
		TeamSize:  2,
		Budget:    500,
	}
}

func TestInsertProjectAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var last int64
	for i := 0; i < 5; i++ {
		p, err := s.InsertProject(ctx, projectInput("p", entities.ProjectActive))
		require.NoError(t, err)
		require.Greater(t, p.ID, last)
		require.Equal(t, 0, p.Progress)
		last = p.ID

		all, err := s.ListProjects(ctx, entities.ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, all, i+1)
	}
}

func TestInsertedProjectRoundTrips(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := projectInput("Billing", entities.ProjectPending)
	in.Description = "invoices"
	created, err := s.InsertProject(ctx, in)
	require.NoError(t, err)

	all, err := s.ListProjects(ctx, entities.ProjectFilter{})
	require.NoError(t, err)

	var found *entities.Project
	for i := range all {
		if all[i].ID == created.ID {
			found = &all[i]
		}
	}
	require.NotNil(t, found)
	require.Equal(t, *created, *found)

	byID, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, *created, *byID)
}

func TestReturnedProjectIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.InsertProject(ctx, projectInput("Billing", entities.ProjectActive))
	require.NoError(t, err)
	p.Name = "changed outside"

	stored, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Billing", stored.Name)
}

func TestReplaceProject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.InsertProject(ctx, projectInput("Billing", entities.ProjectActive))
	require.NoError(t, err)

	upd := entities.ProjectUpdate{ProjectInput: projectInput("Billing v2", entities.ProjectCompleted), Progress: 100}
	replaced, err := s.ReplaceProject(ctx, p.ID, upd)
	require.NoError(t, err)
	require.Equal(t, p.ID, replaced.ID)
	require.Equal(t, "Billing v2", replaced.Name)
	require.Equal(t, 100, replaced.Progress)

	_, err = s.ReplaceProject(ctx, 99, upd)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	active := entities.ProjectActive
	list, err := s.ListProjects(ctx, entities.ProjectFilter{Status: &active})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListProjectsFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, in := range []entities.ProjectInput{
		projectInput("Mobile App", entities.ProjectActive),
		projectInput("Data Warehouse", entities.ProjectPending),
		projectInput("Mobile Backend", entities.ProjectPending),
	} {
		_, err := s.InsertProject(ctx, in)
		require.NoError(t, err)
	}

	pending := entities.ProjectPending
	list, err := s.ListProjects(ctx, entities.ProjectFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Data Warehouse", list[0].Name)

	list, err = s.ListProjects(ctx, entities.ProjectFilter{Status: &pending, Query: "mobile"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Mobile Backend", list[0].Name)
}

func TestListKeepsInsertionOrderPastVarintBoundary(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < 300; i++ {
		_, err := s.InsertProject(ctx, projectInput("p", entities.ProjectActive))
		require.NoError(t, err)
	}

	list, err := s.ListProjects(ctx, entities.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, list, 300)
	for i, p := range list {
		require.Equal(t, int64(i+1), p.ID)
	}
}

func seedRefs(t *testing.T, s *Store) (*entities.Project, *entities.TeamMember) {
	t.Helper()
	ctx := context.Background()
	p, err := s.InsertProject(ctx, projectInput("Billing", entities.ProjectActive))
	require.NoError(t, err)
	m, err := s.InsertTeamMember(ctx, entities.TeamMemberInput{Name: "Ada Lovelace", Role: entities.RoleBackendDeveloper})
	require.NoError(t, err)
	return p, m
}

func taskInput(projectID, assigneeID int64) entities.TaskInput {
	return entities.TaskInput{
		Title:      "Write invoices",
		ProjectID:  projectID,
		AssigneeID: assigneeID,
		Priority:   entities.PriorityHigh,
		Status:     entities.TaskPending,
		DueDate:    day(2024, 3, 1),
	}
}

func TestInsertTaskChecksReferences(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p, m := seedRefs(t, s)

	_, err := s.InsertTask(ctx, taskInput(p.ID+10, m.ID))
	require.ErrorIs(t, err, entities.ErrReferenceNotFound)
	var ref *entities.ReferenceNotFoundError
	require.True(t, errors.As(err, &ref))
	require.Equal(t, "project", ref.Kind)

	_, err = s.InsertTask(ctx, taskInput(p.ID, m.ID+10))
	require.True(t, errors.As(err, &ref))
	require.Equal(t, "team member", ref.Kind)

	tasks, err := s.ListTasks(ctx, entities.TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks)

	task, err := s.InsertTask(ctx, taskInput(p.ID, m.ID))
	require.NoError(t, err)
	require.Equal(t, int64(1), task.ID)
}

func TestSetTaskStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p, m := seedRefs(t, s)

	task, err := s.InsertTask(ctx, taskInput(p.ID, m.ID))
	require.NoError(t, err)

	updated, err := s.SetTaskStatus(ctx, task.ID, entities.TaskCompleted)
	require.NoError(t, err)
	require.Equal(t, entities.TaskCompleted, updated.Status)

	completed := entities.TaskCompleted
	list, err := s.ListTasks(ctx, entities.TaskFilter{Status: &completed})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = s.SetTaskStatus(ctx, 42, entities.TaskCompleted)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestListTasksByIndexes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p1, m1 := seedRefs(t, s)
	p2, err := s.InsertProject(ctx, projectInput("Mobile", entities.ProjectActive))
	require.NoError(t, err)
	m2, err := s.InsertTeamMember(ctx, entities.TeamMemberInput{Name: "Grace Hopper", Role: entities.RoleDevOpsEngineer})
	require.NoError(t, err)

	for _, in := range []entities.TaskInput{
		taskInput(p1.ID, m1.ID),
		taskInput(p2.ID, m1.ID),
		taskInput(p2.ID, m2.ID),
	} {
		_, err := s.InsertTask(ctx, in)
		require.NoError(t, err)
	}

	byProject, err := s.ListTasks(ctx, entities.TaskFilter{ProjectID: &p2.ID})
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	require.Equal(t, int64(2), byProject[0].ID)

	byBoth, err := s.ListTasks(ctx, entities.TaskFilter{ProjectID: &p2.ID, AssigneeID: &m1.ID})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)

	byAssignee, err := s.ListTasks(ctx, entities.TaskFilter{AssigneeID: &m1.ID})
	require.NoError(t, err)
	require.Len(t, byAssignee, 2)
}

func TestTeamMemberAvatarAndRename(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p, m := seedRefs(t, s)
	require.Equal(t, "AL", m.Avatar)

	task, err := s.InsertTask(ctx, taskInput(p.ID, m.ID))
	require.NoError(t, err)

	renamed, err := s.RenameTeamMember(ctx, m.ID, "Augusta King")
	require.NoError(t, err)
	require.Equal(t, "AK", renamed.Avatar)

	stored, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, stored.AssigneeID)

	_, err = s.RenameTeamMember(ctx, 99, "Nobody")
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	_, err = s.GetTeamMember(ctx, 99)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Seed(ctx))
	first, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, first.Projects, 3)
	require.Len(t, first.Members, 5)
	require.Len(t, first.Tasks, 4)

	require.NoError(t, s.Seed(ctx))
	second, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSeedResolvesReferencesAndContinuesIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Seed(ctx))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)

	require.Equal(t, "E-Commerce Platform", snap.Projects[0].Name)
	require.Equal(t, 75, snap.Projects[0].Progress)
	require.Equal(t, "JD", snap.Members[0].Avatar)
	require.Equal(t, snap.Projects[0].ID, snap.Tasks[0].ProjectID)
	require.Equal(t, snap.Members[0].ID, snap.Tasks[0].AssigneeID)
	require.Equal(t, entities.TaskInProgress, snap.Tasks[0].Status)

	p, err := s.InsertProject(ctx, projectInput("Next", entities.ProjectPending))
	require.NoError(t, err)
	require.Equal(t, int64(4), p.ID)
}

func TestSeedFillsOnlyEmptyCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.InsertProject(ctx, projectInput("Own project", entities.ProjectActive))
	require.NoError(t, err)
	require.NoError(t, s.Seed(ctx))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Members, 5)
	require.Empty(t, snap.Tasks)
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.Settings(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.DefaultSettings(), got)

	got.Theme = entities.ThemeDark
	got.SessionTimeout = entities.Timeout1Hour
	saved, err := s.SaveSettings(ctx, got)
	require.NoError(t, err)
	require.Equal(t, got, saved)
	require.Equal(t, time.Hour, s.sessionTimeout())
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newTestStore(t)

	_, err := s.InsertProject(ctx, projectInput("p", entities.ProjectActive))
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Snapshot(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
