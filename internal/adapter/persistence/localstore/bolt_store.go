package localstore

import (
	"encoding/json"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var (
	bucketClients         = []byte("clients")
	bucketInvoices        = []byte("invoices")
	bucketCompanySettings = []byte("company_settings")
	bucketAppSettings     = []byte("app_settings")
	bucketActivities      = []byte("activities")
	bucketPayments        = []byte("payments")
	bucketSyncQueue       = []byte("sync_queue")
)

// The settings buckets hold a single record under this key.
var settingsKey = []byte("settings")

// BoltStore is the durable local store: one bbolt bucket per collection,
// JSON-encoded records keyed by id. bbolt transactions give the
// synchronous, crash-safe semantics the local side requires.
type BoltStore struct {
	db *bolt.DB
}

var _ interfaces.ILocalStore = (*BoltStore)(nil)

func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{
			bucketClients, bucketInvoices, bucketCompanySettings,
			bucketAppSettings, bucketActivities, bucketPayments, bucketSyncQueue,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) ListClients() ([]entities.Client, error) {
	return listAll[entities.Client](s.db, bucketClients)
}

func (s *BoltStore) GetClient(id string) (entities.Client, error) {
	return getOne[entities.Client](s.db, bucketClients, []byte(id))
}

func (s *BoltStore) PutClient(c entities.Client) error {
	return putOne(s.db, bucketClients, []byte(c.ID), c)
}

func (s *BoltStore) DeleteClient(id string) error {
	return deleteOne(s.db, bucketClients, []byte(id))
}

func (s *BoltStore) ReplaceClients(clients []entities.Client) error {
	return replaceAll(s.db, bucketClients, clients, func(c entities.Client) string { return c.ID })
}

func (s *BoltStore) ListInvoices() ([]entities.Invoice, error) {
	return listAll[entities.Invoice](s.db, bucketInvoices)
}

func (s *BoltStore) GetInvoice(id string) (entities.Invoice, error) {
	return getOne[entities.Invoice](s.db, bucketInvoices, []byte(id))
}

func (s *BoltStore) PutInvoice(inv entities.Invoice) error {
	return putOne(s.db, bucketInvoices, []byte(inv.ID), inv)
}

func (s *BoltStore) DeleteInvoice(id string) error {
	return deleteOne(s.db, bucketInvoices, []byte(id))
}

func (s *BoltStore) ReplaceInvoices(invoices []entities.Invoice) error {
	return replaceAll(s.db, bucketInvoices, invoices, func(inv entities.Invoice) string { return inv.ID })
}

func (s *BoltStore) GetCompanySettings() (entities.CompanySettings, error) {
	return getOne[entities.CompanySettings](s.db, bucketCompanySettings, settingsKey)
}

func (s *BoltStore) PutCompanySettings(cs entities.CompanySettings) error {
	return putOne(s.db, bucketCompanySettings, settingsKey, cs)
}

func (s *BoltStore) GetAppSettings() (entities.AppSettings, error) {
	return getOne[entities.AppSettings](s.db, bucketAppSettings, settingsKey)
}

func (s *BoltStore) PutAppSettings(as entities.AppSettings) error {
	return putOne(s.db, bucketAppSettings, settingsKey, as)
}

func (s *BoltStore) ListActivities() ([]entities.Activity, error) {
	activities, err := listAll[entities.Activity](s.db, bucketActivities)
	if err != nil {
		return nil, err
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})
	return activities, nil
}

func (s *BoltStore) PutActivity(a entities.Activity) error {
	return putOne(s.db, bucketActivities, []byte(a.ID), a)
}

func (s *BoltStore) ReplaceActivities(activities []entities.Activity) error {
	return replaceAll(s.db, bucketActivities, activities, func(a entities.Activity) string { return a.ID })
}

func (s *BoltStore) ListPaymentsByInvoiceID(invoiceID string) ([]entities.Payment, error) {
	payments, err := listAll[entities.Payment](s.db, bucketPayments)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.InvoiceID == invoiceID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *BoltStore) PutPayment(p entities.Payment) error {
	return putOne(s.db, bucketPayments, []byte(p.ID), p)
}

func listAll[T any](db *bolt.DB, bucket []byte) ([]T, error) {
	var out []T
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			var rec T
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// getOne returns the zero value when the key is absent; absence is not an
// error.
func getOne[T any](db *bolt.DB, bucket, key []byte) (T, error) {
	var rec T
	err := db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get(key)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &rec)
	})
	return rec, err
}

func putOne(db *bolt.DB, bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
}

func deleteOne(db *bolt.DB, bucket, key []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(key)
	})
}

// replaceAll overwrites a whole collection in one transaction, used by the
// remote-wins pull on login.
func replaceAll[T any](db *bolt.DB, bucket []byte, records []T, key func(T) string) error {
	return db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(bucket)
		if err != nil {
			return err
		}
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(key(rec)), data); err != nil {
				return err
			}
		}
		return nil
	})
}
