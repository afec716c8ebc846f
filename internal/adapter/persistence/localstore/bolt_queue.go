package localstore

import (
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

// BoltSyncQueue persists the retry queue in the same bbolt file as the
// rest of the local data, so queued pushes survive process restarts.
type BoltSyncQueue struct {
	db *bolt.DB
}

var _ interfaces.ISyncQueue = (*BoltSyncQueue)(nil)

func NewBoltSyncQueue(store *BoltStore) *BoltSyncQueue {
	return &BoltSyncQueue{db: store.db}
}

// List returns queued items oldest first.
func (q *BoltSyncQueue) List() ([]entities.SyncQueueItem, error) {
	items, err := listAll[entities.SyncQueueItem](q.db, bucketSyncQueue)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (q *BoltSyncQueue) Put(item entities.SyncQueueItem) error {
	return putOne(q.db, bucketSyncQueue, []byte(item.ID), item)
}

func (q *BoltSyncQueue) Delete(id string) error {
	return deleteOne(q.db, bucketSyncQueue, []byte(id))
}
