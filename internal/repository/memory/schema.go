package memory

import "github.com/hashicorp/go-memdb"

const (
	tableProjects = "projects"
	tableTasks    = "tasks"
	tableMembers  = "members"

	indexID       = "id"
	indexStatus   = "status"
	indexProject  = "project"
	indexAssignee = "assignee"
)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableProjects: {
				Name: tableProjects,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					indexStatus: {
						Name:    indexStatus,
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
				},
			},
			tableTasks: {
				Name: tableTasks,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					indexProject: {
						Name:    indexProject,
						Indexer: &memdb.IntFieldIndex{Field: "ProjectID"},
					},
					indexAssignee: {
						Name:    indexAssignee,
						Indexer: &memdb.IntFieldIndex{Field: "AssigneeID"},
					},
					indexStatus: {
						Name:    indexStatus,
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
				},
			},
			tableMembers: {
				Name: tableMembers,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}
