package response

import (
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
)

type SyncErrorResponse struct {
	EntityType string    `json:"entity_type"`
	Operation  string    `json:"operation"`
	EntityID   string    `json:"entity_id,omitempty"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type SyncStatusResponse struct {
	State        string              `json:"state"`
	Online       bool                `json:"online"`
	PendingQueue int                 `json:"pending_queue"`
	LastSyncAt   *time.Time          `json:"last_sync_at,omitempty"`
	Errors       []SyncErrorResponse `json:"errors"`
}

type SyncLoginResponse struct {
	Decision string `json:"decision"`
}

func FromSyncStatus(s usecase.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		State:        string(s.State),
		Online:       s.Online,
		PendingQueue: s.PendingQueue,
		LastSyncAt:   s.LastSyncAt,
		Errors:       FromSyncErrors(s.Errors),
	}
}

func FromSyncErrors(errs []entities.SyncError) []SyncErrorResponse {
	out := make([]SyncErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, SyncErrorResponse{
			EntityType: string(e.EntityType),
			Operation:  string(e.Operation),
			EntityID:   e.EntityID,
			Message:    e.Message,
			Timestamp:  e.Timestamp,
		})
	}
	return out
}
