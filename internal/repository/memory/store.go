// Package memory keeps every session's entities in an in-process go-memdb database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tasksphere/internal/entities"

	"github.com/hashicorp/go-memdb"
	"go.uber.org/zap"
)

// Store is the entity store of a single session.
//
// Writes run inside memdb write transactions, which are serialized; the last
// assigned ids are only read and advanced while such a transaction is open,
// so ids keep increasing even when an insert is rejected.
type Store struct {
	db  *memdb.MemDB
	log *zap.SugaredLogger

	lastProjectID int64
	lastTaskID    int64
	lastMemberID  int64

	settingsMu sync.RWMutex
	settings   entities.Settings
}

// NewStore creates an empty store with default settings.
func NewStore(log *zap.SugaredLogger) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &Store{
		db:       db,
		log:      log,
		settings: entities.DefaultSettings(),
	}, nil
}

// Snapshot reads every collection inside one read transaction.
func (s *Store) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return entities.Snapshot{}, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	projects, err := collect[entities.Project](txn, tableProjects, indexID, nil)
	if err != nil {
		return entities.Snapshot{}, err
	}
	tasks, err := collect[entities.Task](txn, tableTasks, indexID, nil)
	if err != nil {
		return entities.Snapshot{}, err
	}
	members, err := collect[entities.TeamMember](txn, tableMembers, indexID, nil)
	if err != nil {
		return entities.Snapshot{}, err
	}

	sortByID(projects, func(p entities.Project) int64 { return p.ID })
	sortByID(tasks, func(t entities.Task) int64 { return t.ID })
	sortByID(members, func(m entities.TeamMember) int64 { return m.ID })

	return entities.Snapshot{Projects: projects, Tasks: tasks, Members: members}, nil
}

// collect copies every object of an index lookup, keeping those accepted by keep.
func collect[T any](txn *memdb.Txn, table, index string, keep func(T) bool, args ...interface{}) ([]T, error) {
	it, err := txn.Get(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	out := make([]T, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		v := *obj.(*T)
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// sortByID restores insertion order; memdb int keys do not iterate numerically.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func first[T any](txn *memdb.Txn, table string, id int64) (*T, error) {
	obj, err := txn.First(table, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", table, err)
	}
	if obj == nil {
		return nil, nil
	}
	v := *obj.(*T)
	return &v, nil
}

func isEmpty(txn *memdb.Txn, table string) (bool, error) {
	it, err := txn.Get(table, indexID)
	if err != nil {
		return false, fmt.Errorf("scan %s: %w", table, err)
	}
	return it.Next() == nil, nil
}
