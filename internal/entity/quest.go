package entity

import "fmt"

// Quest is a task offered by an NPC.
type Quest struct {
	ID          string
	Title       string
	Description string
	Started     bool
}

// Start marks the quest as started and returns the announcement.
func (q *Quest) Start() string {
	q.Started = true
	return fmt.Sprintf("Quest started: %s", q.Title)
}
