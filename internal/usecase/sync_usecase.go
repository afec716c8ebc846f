package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var ErrNotAuthenticated = errors.New("no authenticated user")

// SyncState is the coordinator's position in the per-session state machine
// LoggedOut -> Deciding -> {PullingRemote | PushingLocal | Idle} -> Idle.

type SyncState string

const (
	SyncStateLoggedOut     SyncState = "logged_out"
	SyncStateDeciding      SyncState = "deciding"
	SyncStatePullingRemote SyncState = "pulling_remote"
	SyncStatePushingLocal  SyncState = "pushing_local"
	SyncStateIdle          SyncState = "idle"
)

// SyncDecision is the outcome of a login sync.

type SyncDecision string

const (
	SyncDecisionPulledRemote SyncDecision = "pulled_remote"
	SyncDecisionPushedLocal  SyncDecision = "pushed_local"
	SyncDecisionNone         SyncDecision = "noop"
)

// SyncStatus is the snapshot served to the indicator surface.
type SyncStatus struct {
	State        SyncState            `json:"state"`
	Online       bool                 `json:"online"`
	PendingQueue int                  `json:"pending_queue"`
	LastSyncAt   *time.Time           `json:"last_sync_at,omitempty"`
	Errors       []entities.SyncError `json:"errors"`
}

// ISyncCoordinator exposes the sync operations used by the HTTP adapter.

type ISyncCoordinator interface {
	interfaces.ISyncNotifier
	SyncOnLogin(ctx context.Context) (SyncDecision, error)
	Logout()
	Flush(ctx context.Context) error
	Status(ctx context.Context) SyncStatus
	DismissError(index int) error
	ClearErrors()
}

// SyncCoordinator reconciles the local authoritative copy against the
// remote store. Remote failures are never fatal: local mutators always
// succeed from the caller's perspective and sync failure is observable
// only through the error list and the pending queue.
//
// The runtime here is multi-threaded, so the "effectively atomic update"
// guarantee of the original single-threaded design is preserved with a
// mutex around coordinator state and a second one serializing queue
// mutation, plus an atomic latch for the in-flight guard.
type SyncCoordinator struct {
	local    interfaces.ILocalStore
	queue    interfaces.ISyncQueue
	remote   interfaces.IRemoteStore
	identity interfaces.IIdentityProvider
	log      *logrus.Logger

	inFlight atomic.Bool
	wg       sync.WaitGroup

	mu           sync.Mutex
	state        SyncState
	cachedUserID string
	userCached   bool
	lastSyncAt   *time.Time
	errs         []entities.SyncError

	qmu sync.Mutex

	// dropHandler, when set, is invoked for every item dropped after the
	// retry cap. The drop itself stays silent toward users; this is the
	// escalation point left for a future permanent-failure surface.
	dropHandler func(entities.SyncQueueItem)
}

var _ ISyncCoordinator = (*SyncCoordinator)(nil)
var _ interfaces.ISyncNotifier = (*SyncCoordinator)(nil)

func NewSyncCoordinator(
	local interfaces.ILocalStore,
	queue interfaces.ISyncQueue,
	remote interfaces.IRemoteStore,
	identity interfaces.IIdentityProvider,
	log *logrus.Logger,
) *SyncCoordinator {
	if log == nil {
		log = logrus.New()
	}
	return &SyncCoordinator{
		local:    local,
		queue:    queue,
		remote:   remote,
		identity: identity,
		log:      log,
		state:    SyncStateLoggedOut,
	}
}

// SetDropHandler installs the hook called when a queue item exceeds the
// retry cap.
func (s *SyncCoordinator) SetDropHandler(fn func(entities.SyncQueueItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropHandler = fn
}

// SyncOnLogin runs the initial sync decision for a freshly acquired auth
// session. It fetches the remote snapshot (all collections in parallel,
// fail-fast) and either pulls it wholesale over the local stores or pushes
// all local data up when the remote side is empty.
//
// The pull is remote-wins with no field-level merge or timestamp
// comparison. That can lose local edits made before logging in on a device
// holding older cloud data; the behavior is kept deliberately, see
// DESIGN.md.
//
// Concurrent triggers are suppressed by an in-flight latch: a second call
// while one sync runs is a no-op. Any fetch failure aborts the whole
// attempt with local data untouched and nothing queued.
func (s *SyncCoordinator) SyncOnLogin(ctx context.Context) (SyncDecision, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug("sync trigger ignored: already in flight")
		return SyncDecisionNone, nil
	}
	defer s.inFlight.Store(false)

	// Session activation: drop any memoized identity from a prior session.
	s.InvalidateIdentity()

	userID, err := s.resolveUserID(ctx)
	if err != nil {
		return SyncDecisionNone, err
	}
	if userID == "" {
		return SyncDecisionNone, ErrNotAuthenticated
	}

	s.setState(SyncStateDeciding)

	var (
		remoteClients    []entities.Client
		remoteInvoices   []entities.Invoice
		remoteCompany    *entities.CompanySettings
		remoteApp        *entities.AppSettings
		remoteActivities []entities.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		remoteClients, err = s.remote.FetchClients(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		remoteInvoices, err = s.remote.FetchInvoices(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		remoteCompany, err = s.remote.FetchCompanySettings(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		remoteApp, err = s.remote.FetchAppSettings(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		remoteActivities, err = s.remote.FetchActivities(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.WithField("user_id", userID).Warnf("remote snapshot fetch failed, aborting sync: %v", err)
		s.setState(SyncStateIdle)
		return SyncDecisionNone, err
	}

	hasCloudData := len(remoteClients) > 0 || len(remoteInvoices) > 0 || remoteCompany != nil
	if hasCloudData {
		if err := s.pullRemote(remoteClients, remoteInvoices, remoteCompany, remoteApp, remoteActivities); err != nil {
			s.setState(SyncStateIdle)
			return SyncDecisionNone, err
		}
		s.markSynced()
		s.setState(SyncStateIdle)
		return SyncDecisionPulledRemote, nil
	}

	hasLocal, err := s.hasLocalData()
	if err != nil {
		s.setState(SyncStateIdle)
		return SyncDecisionNone, err
	}
	if !hasLocal {
		s.setState(SyncStateIdle)
		return SyncDecisionNone, nil
	}

	if err := s.pushLocal(ctx, userID); err != nil {
		s.setState(SyncStateIdle)
		return SyncDecisionNone, err
	}
	s.markSynced()
	s.setState(SyncStateIdle)
	return SyncDecisionPushedLocal, nil
}

func (s *SyncCoordinator) pullRemote(
	clients []entities.Client,
	invoices []entities.Invoice,
	company *entities.CompanySettings,
	app *entities.AppSettings,
	activities []entities.Activity,
) error {
	s.setState(SyncStatePullingRemote)

	if err := s.local.ReplaceClients(clients); err != nil {
		return err
	}
	if err := s.local.ReplaceInvoices(invoices); err != nil {
		return err
	}
	// Remote wins unconditionally: a missing remote settings record
	// overwrites local settings with the zero value.
	var cs entities.CompanySettings
	if company != nil {
		cs = *company
	}
	if err := s.local.PutCompanySettings(cs); err != nil {
		return err
	}
	var as entities.AppSettings
	if app != nil {
		as = *app
	}
	if err := s.local.PutAppSettings(as); err != nil {
		return err
	}
	if err := s.local.ReplaceActivities(activities); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"clients":    len(clients),
		"invoices":   len(invoices),
		"activities": len(activities),
	}).Info("pulled remote snapshot over local stores")
	return nil
}

func (s *SyncCoordinator) hasLocalData() (bool, error) {
	clients, err := s.local.ListClients()
	if err != nil {
		return false, err
	}
	if len(clients) > 0 {
		return true, nil
	}
	invoices, err := s.local.ListInvoices()
	if err != nil {
		return false, err
	}
	if len(invoices) > 0 {
		return true, nil
	}
	company, err := s.local.GetCompanySettings()
	if err != nil {
		return false, err
	}
	return company.Name != "", nil
}

// pushLocal uploads every local record under the user id. Individual
// failures do not abort the upload: they are recorded and queued exactly
// like a failed mutation push.
func (s *SyncCoordinator) pushLocal(ctx context.Context, userID string) error {
	s.setState(SyncStatePushingLocal)

	clients, err := s.local.ListClients()
	if err != nil {
		return err
	}
	for _, c := range clients {
		s.pushOrQueue(ctx, s.newQueueItem(entities.EntityTypeClient, entities.SyncOpUpsert, c.ID, c, userID))
	}

	invoices, err := s.local.ListInvoices()
	if err != nil {
		return err
	}
	for _, inv := range invoices {
		s.pushOrQueue(ctx, s.newQueueItem(entities.EntityTypeInvoice, entities.SyncOpUpsert, inv.ID, inv, userID))
	}

	company, err := s.local.GetCompanySettings()
	if err != nil {
		return err
	}
	if company.Name != "" {
		s.pushOrQueue(ctx, s.newQueueItem(entities.EntityTypeCompanySettings, entities.SyncOpUpsert, "", company, userID))
	}

	app, err := s.local.GetAppSettings()
	if err != nil {
		return err
	}
	if app != (entities.AppSettings{}) {
		s.pushOrQueue(ctx, s.newQueueItem(entities.EntityTypeAppSettings, entities.SyncOpUpsert, "", app, userID))
	}

	activities, err := s.local.ListActivities()
	if err != nil {
		return err
	}
	for _, a := range activities {
		s.pushOrQueue(ctx, s.newQueueItem(entities.EntityTypeActivity, entities.SyncOpUpsert, a.ID, a, userID))
	}

	s.log.WithFields(logrus.Fields{
		"clients":  len(clients),
		"invoices": len(invoices),
	}).Info("pushed local data to empty remote")
	return nil
}

// Logout transitions back to LoggedOut. Local data is deliberately kept
// for offline/guest use; the transition is logged only.
func (s *SyncCoordinator) Logout() {
	s.InvalidateIdentity()
	s.setState(SyncStateLoggedOut)
	s.log.Info("logged out; local data kept for offline use")
}

// PushUpsert schedules a best-effort remote upsert for a locally mutated
// entity. It returns immediately; the push runs in the background and on
// failure lands in the error list and the retry queue.
func (s *SyncCoordinator) PushUpsert(entityType entities.EntityType, entityID string, record any) {
	payload, err := json.Marshal(record)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"entity_type": entityType,
			"entity_id":   entityID,
		}).Errorf("cannot encode record for sync: %v", err)
		return
	}
	item := s.newRawQueueItem(entityType, entities.SyncOpUpsert, entityID, payload, "")
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pushMutation(context.Background(), item)
	}()
}

// PushDelete schedules a best-effort remote deletion. Same fire-and-forget
// contract as PushUpsert.
func (s *SyncCoordinator) PushDelete(entityType entities.EntityType, entityID string) {
	item := s.newRawQueueItem(entityType, entities.SyncOpDelete, entityID, nil, "")
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pushMutation(context.Background(), item)
	}()
}

// Wait blocks until all background pushes have settled. Used on shutdown
// and in tests.
func (s *SyncCoordinator) Wait() {
	s.wg.Wait()
}

func (s *SyncCoordinator) pushMutation(ctx context.Context, item entities.SyncQueueItem) {
	userID, err := s.resolveUserID(ctx)
	if err != nil || userID == "" {
		// Anonymous/offline: the mutation stays local-only, nothing queued.
		s.log.WithFields(logrus.Fields{
			"entity_type": item.EntityType,
			"entity_id":   item.EntityID,
		}).Debug("no user id resolvable, skipping remote push")
		return
	}
	item.UserID = userID

	if !s.pushOrQueue(ctx, item) {
		return
	}

	s.markSynced()
	// Opportunistic drain of previously queued items.
	s.flushQueue(ctx, userID)
}

// pushOrQueue executes the remote operation once. On failure it records a
// SyncError and enqueues the item for later retry, and reports false.
func (s *SyncCoordinator) pushOrQueue(ctx context.Context, item entities.SyncQueueItem) bool {
	if err := s.dispatch(ctx, item); err != nil {
		s.recordError(entities.SyncError{
			EntityType: item.EntityType,
			Operation:  item.Operation,
			EntityID:   item.EntityID,
			Message:    err.Error(),
			Timestamp:  time.Now().UTC(),
		})
		s.enqueue(item)
		s.log.WithFields(logrus.Fields{
			"entity_type": item.EntityType,
			"entity_id":   item.EntityID,
			"operation":   item.Operation,
		}).Warnf("remote push failed, queued for retry: %v", err)
		return false
	}
	return true
}

// Flush drains the retry queue once, outside of the opportunistic
// post-push drain. No-op when no user id is resolvable.
func (s *SyncCoordinator) Flush(ctx context.Context) error {
	userID, err := s.resolveUserID(ctx)
	if err != nil {
		return err
	}
	if userID == "" {
		return ErrNotAuthenticated
	}
	s.flushQueue(ctx, userID)
	return nil
}

// flushQueue retries queued items oldest first. Each failed attempt
// increments the retry count; an item reaching the cap is dropped with no
// user-facing signal beyond the drop handler and a warn log.
func (s *SyncCoordinator) flushQueue(ctx context.Context, userID string) {
	s.qmu.Lock()
	defer s.qmu.Unlock()

	items, err := s.queue.List()
	if err != nil {
		s.log.Warnf("cannot read sync queue: %v", err)
		return
	}

	for _, item := range items {
		if item.UserID == "" {
			item.UserID = userID
		}
		if err := s.dispatch(ctx, item); err != nil {
			item.RetryCount++
			if item.RetryCount >= entities.MaxSyncRetries {
				if derr := s.queue.Delete(item.ID); derr != nil {
					s.log.Warnf("cannot drop exhausted queue item %s: %v", item.ID, derr)
					continue
				}
				s.log.WithFields(logrus.Fields{
					"entity_type": item.EntityType,
					"entity_id":   item.EntityID,
					"retry_count": item.RetryCount,
				}).Warn("sync queue item exceeded retry cap, dropped")
				s.mu.Lock()
				drop := s.dropHandler
				s.mu.Unlock()
				if drop != nil {
					drop(item)
				}
				continue
			}
			if perr := s.queue.Put(item); perr != nil {
				s.log.Warnf("cannot persist retry count for %s: %v", item.ID, perr)
			}
			continue
		}
		if derr := s.queue.Delete(item.ID); derr != nil {
			s.log.Warnf("cannot remove flushed queue item %s: %v", item.ID, derr)
		}
	}
}

// dispatch routes a queue item to the matching remote call. Upserts carry
// the full JSON record; deletes only the entity id.
func (s *SyncCoordinator) dispatch(ctx context.Context, item entities.SyncQueueItem) error {
	if item.Operation == entities.SyncOpDelete {
		switch item.EntityType {
		case entities.EntityTypeClient:
			return s.remote.DeleteClient(ctx, item.EntityID)
		case entities.EntityTypeInvoice:
			return s.remote.DeleteInvoice(ctx, item.EntityID)
		case entities.EntityTypeActivity:
			return s.remote.DeleteActivity(ctx, item.EntityID)
		default:
			return fmt.Errorf("entity type %q cannot be deleted remotely", item.EntityType)
		}
	}

	switch item.EntityType {
	case entities.EntityTypeClient:
		var c entities.Client
		if err := json.Unmarshal(item.Payload, &c); err != nil {
			return err
		}
		return s.remote.UpsertClient(ctx, c, item.UserID)
	case entities.EntityTypeInvoice:
		var inv entities.Invoice
		if err := json.Unmarshal(item.Payload, &inv); err != nil {
			return err
		}
		return s.remote.UpsertInvoice(ctx, inv, item.UserID)
	case entities.EntityTypeCompanySettings:
		var cs entities.CompanySettings
		if err := json.Unmarshal(item.Payload, &cs); err != nil {
			return err
		}
		return s.remote.UpsertCompanySettings(ctx, cs, item.UserID)
	case entities.EntityTypeAppSettings:
		var as entities.AppSettings
		if err := json.Unmarshal(item.Payload, &as); err != nil {
			return err
		}
		return s.remote.UpsertAppSettings(ctx, as, item.UserID)
	case entities.EntityTypeActivity:
		var a entities.Activity
		if err := json.Unmarshal(item.Payload, &a); err != nil {
			return err
		}
		return s.remote.UpsertActivity(ctx, a, item.UserID)
	default:
		return fmt.Errorf("unknown entity type %q", item.EntityType)
	}
}

func (s *SyncCoordinator) enqueue(item entities.SyncQueueItem) {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	if err := s.queue.Put(item); err != nil {
		s.log.Errorf("cannot enqueue failed push %s/%s: %v", item.EntityType, item.EntityID, err)
	}
}

func (s *SyncCoordinator) newQueueItem(t entities.EntityType, op entities.SyncOperation, entityID string, record any, userID string) entities.SyncQueueItem {
	payload, err := json.Marshal(record)
	if err != nil {
		// Records are plain JSON-serializable structs; this cannot fail
		// for well-formed entities.
		s.log.Errorf("cannot encode %s record: %v", t, err)
	}
	return s.newRawQueueItem(t, op, entityID, payload, userID)
}

func (s *SyncCoordinator) newRawQueueItem(t entities.EntityType, op entities.SyncOperation, entityID string, payload json.RawMessage, userID string) entities.SyncQueueItem {
	return entities.SyncQueueItem{
		ID:         uuid.NewString(),
		EntityType: t,
		Operation:  op,
		EntityID:   entityID,
		Payload:    payload,
		UserID:     userID,
		RetryCount: 0,
		CreatedAt:  time.Now().UTC(),
	}
}

// resolveUserID memoizes the identity lookup until invalidated on an auth
// state change.
func (s *SyncCoordinator) resolveUserID(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.userCached {
		id := s.cachedUserID
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	id, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cachedUserID = id
	s.userCached = true
	s.mu.Unlock()
	return id, nil
}

// InvalidateIdentity drops the memoized user id. Call on every auth state
// change.
func (s *SyncCoordinator) InvalidateIdentity() {
	s.mu.Lock()
	s.cachedUserID = ""
	s.userCached = false
	s.mu.Unlock()
}

// Status reports the coordinator snapshot for the indicator surface.
// Online means a user id is currently resolvable.
func (s *SyncCoordinator) Status(ctx context.Context) SyncStatus {
	userID, err := s.resolveUserID(ctx)
	online := err == nil && userID != ""

	pending := 0
	if items, err := s.queue.List(); err == nil {
		pending = len(items)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	errs := make([]entities.SyncError, len(s.errs))
	copy(errs, s.errs)
	return SyncStatus{
		State:        s.state,
		Online:       online,
		PendingQueue: pending,
		LastSyncAt:   s.lastSyncAt,
		Errors:       errs,
	}
}

// DismissError removes a single recorded error by index.
func (s *SyncCoordinator) DismissError(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.errs) {
		return fmt.Errorf("no sync error at index %d", index)
	}
	s.errs = append(s.errs[:index], s.errs[index+1:]...)
	return nil
}

// ClearErrors empties the recorded error list.
func (s *SyncCoordinator) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = nil
}

func (s *SyncCoordinator) recordError(e entities.SyncError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, e)
	if len(s.errs) > entities.MaxRecentSyncErrors {
		s.errs = s.errs[len(s.errs)-entities.MaxRecentSyncErrors:]
	}
}

func (s *SyncCoordinator) markSynced() {
	now := time.Now().UTC()
	s.mu.Lock()
	s.lastSyncAt = &now
	s.mu.Unlock()
}

func (s *SyncCoordinator) setState(st SyncState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.log.WithField("state", st).Debug("sync state changed")
}
