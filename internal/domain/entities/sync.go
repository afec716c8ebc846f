package entities

import (
	"encoding/json"
	"time"
)

// EntityType names a synced collection.

type EntityType string

const (
	EntityTypeClient          EntityType = "clients"
	EntityTypeInvoice         EntityType = "invoices"
	EntityTypeCompanySettings EntityType = "company_settings"
	EntityTypeAppSettings     EntityType = "app_settings"
	EntityTypeActivity        EntityType = "activities"
)

// SyncOperation is the remote effect of a queued mutation.

type SyncOperation string

const (
	SyncOpUpsert SyncOperation = "upsert"
	SyncOpDelete SyncOperation = "delete"
)

// MaxSyncRetries bounds queued retries per item. A failed push is attempted
// once inline and then at most MaxSyncRetries times from the queue; after
// that the item is dropped.
const MaxSyncRetries = 5

// MaxRecentSyncErrors caps the sync error list; oldest entries are evicted
// first (ring-buffer semantics).
const MaxRecentSyncErrors = 10

// SyncQueueItem is a durably queued remote operation awaiting retry.
//
// Payload holds the full JSON-encoded record for upserts (pushes are
// whole-object and therefore idempotent); it is empty for deletes.
type SyncQueueItem struct {
	ID         string          `json:"id"`
	EntityType EntityType      `json:"entity_type"`
	Operation  SyncOperation   `json:"operation"`
	EntityID   string          `json:"entity_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	UserID     string          `json:"user_id"`
	RetryCount int             `json:"retry_count"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SyncError is an ephemeral record of a failed push, kept for the
// online/offline indicator surface. It is observability only; the retry
// queue is the durable side.
type SyncError struct {
	EntityType EntityType    `json:"entity_type"`
	Operation  SyncOperation `json:"operation"`
	EntityID   string        `json:"entity_id,omitempty"`
	Message    string        `json:"message"`
	Timestamp  time.Time     `json:"timestamp"`
}
