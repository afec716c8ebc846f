package interfaces

import (
	"context"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

// IIdentityProvider resolves the id of the authenticated user, delegated
// to an external identity provider.
//
// An empty id (with nil error) means anonymous/offline: mutations stay
// local-only and nothing is pushed or queued. The sync coordinator caches
// the lookup and invalidates it on auth state changes.

type IIdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// ISyncNotifier is the sync side-channel exposed to the CRUD usecases.
// Both calls are fire-and-forget: they never block the caller and never
// surface an error — sync failure is observable only through the
// coordinator's error list and queue length.

type ISyncNotifier interface {
	PushUpsert(entityType entities.EntityType, entityID string, record any)
	PushDelete(entityType entities.EntityType, entityID string)
}
