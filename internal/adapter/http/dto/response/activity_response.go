package response

import (
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

type ActivityResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Action:      string(a.Action),
		EntityType:  string(a.EntityType),
		EntityID:    a.EntityID,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func FromActivities(activities []entities.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, FromActivity(a))
	}
	return out
}
