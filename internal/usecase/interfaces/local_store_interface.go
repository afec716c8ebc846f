package interfaces

import (
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

// ILocalStore abstracts the durable local key-value store. It is the
// authoritative copy for the running session: every operation is
// synchronous, durable across process restarts, and must succeed or fail
// independently of remote sync.
//
// Lookups by id return a zero-value record (empty ID) when nothing is
// stored; absence is not an error.
//
// The Replace* methods overwrite a whole collection wholesale; they exist
// for the remote-wins pull on login.

type ILocalStore interface {
	ListClients() ([]entities.Client, error)
	GetClient(id string) (entities.Client, error)
	PutClient(c entities.Client) error
	DeleteClient(id string) error
	ReplaceClients(clients []entities.Client) error

	ListInvoices() ([]entities.Invoice, error)
	GetInvoice(id string) (entities.Invoice, error)
	PutInvoice(inv entities.Invoice) error
	DeleteInvoice(id string) error
	ReplaceInvoices(invoices []entities.Invoice) error

	GetCompanySettings() (entities.CompanySettings, error)
	PutCompanySettings(s entities.CompanySettings) error

	GetAppSettings() (entities.AppSettings, error)
	PutAppSettings(s entities.AppSettings) error

	ListActivities() ([]entities.Activity, error)
	PutActivity(a entities.Activity) error
	ReplaceActivities(activities []entities.Activity) error

	ListPaymentsByInvoiceID(invoiceID string) ([]entities.Payment, error)
	PutPayment(p entities.Payment) error
}

// ISyncQueue is the durable bounded-retry queue for failed remote pushes.
// List returns items oldest first.

type ISyncQueue interface {
	List() ([]entities.SyncQueueItem, error)
	Put(item entities.SyncQueueItem) error
	Delete(id string) error
}
