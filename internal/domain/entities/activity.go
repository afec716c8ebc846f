package entities

import "time"

// ActivityAction classifies an activity log entry.

type ActivityAction string

const (
	ActivityActionCreated ActivityAction = "created"
	ActivityActionUpdated ActivityAction = "updated"
	ActivityActionDeleted ActivityAction = "deleted"
)

// Activity is an append-only log entry recorded after every local mutation.
// Entries are stored locally and synced like any other record.
type Activity struct {
	ID          string         `json:"id"`
	Action      ActivityAction `json:"action"`
	EntityType  EntityType     `json:"entity_type"`
	EntityID    string         `json:"entity_id,omitempty"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}
