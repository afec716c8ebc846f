package interfaces

import (
	"context"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

// IRemoteStore abstracts the cloud copy of the user's data, reachable only
// when online and authenticated.
//
// Contract notes:
//   - Every record lives under the authenticated user id.
//   - Upserts are full-object and keyed by entity id, so they are
//     idempotent and last-write-to-arrive wins at the storage layer.
//   - Failures surface as plain errors; no structured taxonomy is assumed
//     from the remote side.
//   - Fetch* for settings returns nil when the user has no stored record.

type IRemoteStore interface {
	FetchClients(ctx context.Context, userID string) ([]entities.Client, error)
	FetchInvoices(ctx context.Context, userID string) ([]entities.Invoice, error)
	FetchCompanySettings(ctx context.Context, userID string) (*entities.CompanySettings, error)
	FetchAppSettings(ctx context.Context, userID string) (*entities.AppSettings, error)
	FetchActivities(ctx context.Context, userID string) ([]entities.Activity, error)

	UpsertClient(ctx context.Context, c entities.Client, userID string) error
	UpsertInvoice(ctx context.Context, inv entities.Invoice, userID string) error
	UpsertCompanySettings(ctx context.Context, s entities.CompanySettings, userID string) error
	UpsertAppSettings(ctx context.Context, s entities.AppSettings, userID string) error
	UpsertActivity(ctx context.Context, a entities.Activity, userID string) error

	DeleteClient(ctx context.Context, id string) error
	DeleteInvoice(ctx context.Context, id string) error
	DeleteActivity(ctx context.Context, id string) error
}
