package memory

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"tasksphere/internal/entities"

	"github.com/hashicorp/go-memdb"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

//go:embed fixtures/seed.yaml
var seedYAML []byte

type seedFixture struct {
	Projects []struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		Status      string  `yaml:"status"`
		Progress    int     `yaml:"progress"`
		StartDate   string  `yaml:"start_date"`
		EndDate     string  `yaml:"end_date"`
		TeamSize    int     `yaml:"team_size"`
		Budget      float64 `yaml:"budget"`
	} `yaml:"projects"`
	Members []struct {
		Name  string `yaml:"name"`
		Role  string `yaml:"role"`
		Email string `yaml:"email"`
		Phone string `yaml:"phone"`
	} `yaml:"members"`
	Tasks []struct {
		Title       string `yaml:"title"`
		Project     string `yaml:"project"`
		Assignee    string `yaml:"assignee"`
		Priority    string `yaml:"priority"`
		Status      string `yaml:"status"`
		DueDate     string `yaml:"due_date"`
		Description string `yaml:"description"`
	} `yaml:"tasks"`
}

var loadSeed = sync.OnceValues(func() (*seedFixture, error) {
	var f seedFixture
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("decode seed fixture: %w", err)
	}
	return &f, nil
})

// Seed fills every empty collection with the sample data. Collections that
// already hold rows are left untouched, so calling it again is a no-op.
func (s *Store) Seed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fixture, err := loadSeed()
	if err != nil {
		return err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	// Counters advance only once every row is in.
	lastProject, lastMember, lastTask := s.lastProjectID, s.lastMemberID, s.lastTaskID

	if empty, err := isEmpty(txn, tableProjects); err != nil {
		return err
	} else if empty {
		for _, row := range fixture.Projects {
			start, err := time.Parse(dateLayout, row.StartDate)
			if err != nil {
				return fmt.Errorf("seed project %q: %w", row.Name, err)
			}
			end, err := time.Parse(dateLayout, row.EndDate)
			if err != nil {
				return fmt.Errorf("seed project %q: %w", row.Name, err)
			}
			lastProject++
			if err := txn.Insert(tableProjects, &entities.Project{
				ID:          lastProject,
				Name:        row.Name,
				Description: row.Description,
				Status:      entities.ProjectStatus(row.Status),
				Progress:    row.Progress,
				StartDate:   start,
				EndDate:     end,
				TeamSize:    row.TeamSize,
				Budget:      row.Budget,
			}); err != nil {
				return fmt.Errorf("seed project %q: %w", row.Name, err)
			}
		}
	}

	if empty, err := isEmpty(txn, tableMembers); err != nil {
		return err
	} else if empty {
		for _, row := range fixture.Members {
			lastMember++
			if err := txn.Insert(tableMembers, &entities.TeamMember{
				ID:     lastMember,
				Name:   row.Name,
				Role:   entities.Role(row.Role),
				Avatar: entities.Initials(row.Name),
				Email:  row.Email,
				Phone:  row.Phone,
			}); err != nil {
				return fmt.Errorf("seed team member %q: %w", row.Name, err)
			}
		}
	}

	if empty, err := isEmpty(txn, tableTasks); err != nil {
		return err
	} else if empty {
		projectIDs, err := idsByName[entities.Project](txn, tableProjects, func(p entities.Project) (int64, string) { return p.ID, p.Name })
		if err != nil {
			return err
		}
		memberIDs, err := idsByName[entities.TeamMember](txn, tableMembers, func(m entities.TeamMember) (int64, string) { return m.ID, m.Name })
		if err != nil {
			return err
		}
		for _, row := range fixture.Tasks {
			projectID, okProject := projectIDs[row.Project]
			assigneeID, okAssignee := memberIDs[row.Assignee]
			if !okProject || !okAssignee {
				s.log.Warnw("seed task skipped: unresolved reference",
					"task", row.Title, "project", row.Project, "assignee", row.Assignee)
				continue
			}
			due, err := time.Parse(dateLayout, row.DueDate)
			if err != nil {
				return fmt.Errorf("seed task %q: %w", row.Title, err)
			}
			lastTask++
			if err := txn.Insert(tableTasks, &entities.Task{
				ID:          lastTask,
				Title:       row.Title,
				ProjectID:   projectID,
				AssigneeID:  assigneeID,
				Priority:    entities.Priority(row.Priority),
				Status:      entities.TaskStatus(row.Status),
				DueDate:     due,
				Description: row.Description,
			}); err != nil {
				return fmt.Errorf("seed task %q: %w", row.Title, err)
			}
		}
	}

	s.lastProjectID, s.lastMemberID, s.lastTaskID = lastProject, lastMember, lastTask
	txn.Commit()

	s.log.Debugw("store seeded", "last_project_id", lastProject, "last_member_id", lastMember, "last_task_id", lastTask)
	return nil
}

// idsByName maps names to the lowest id carrying them.
func idsByName[T any](txn *memdb.Txn, table string, key func(T) (int64, string)) (map[string]int64, error) {
	rows, err := collect[T](txn, table, indexID, nil)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		id, name := key(row)
		if prev, ok := ids[name]; !ok || id < prev {
			ids[name] = id
		}
	}
	return ids, nil
}
