// Package entities contains core business entities.
package entities

import "time"

// Session identifies one user's interaction and owns its entity store.
type Session struct {
	ID        string
	CreatedAt time.Time
}

// Snapshot is a consistent copy of every collection of a session, in id order.
type Snapshot struct {
	Projects []Project
	Tasks    []Task
	Members  []TeamMember
}
