package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

// IActivityUseCase reads the activity log.

type IActivityUseCase interface {
	List(ctx context.Context) ([]entities.Activity, error)
}

type ActivityUseCase struct {
	local interfaces.ILocalStore
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(local interfaces.ILocalStore) *ActivityUseCase {
	return &ActivityUseCase{local: local}
}

func (u *ActivityUseCase) List(ctx context.Context) ([]entities.Activity, error) {
	return u.local.ListActivities()
}

// recordActivity appends a log entry for a completed mutation and pushes
// it like any other synced record. Logging must never fail the mutation
// that triggered it, so errors are swallowed here.
func recordActivity(local interfaces.ILocalStore, sync interfaces.ISyncNotifier, action entities.ActivityAction, entityType entities.EntityType, entityID, description string) {
	a := entities.Activity{
		ID:          uuid.NewString(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := local.PutActivity(a); err != nil {
		return
	}
	sync.PushUpsert(entities.EntityTypeActivity, a.ID, a)
}
