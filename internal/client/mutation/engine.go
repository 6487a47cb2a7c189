// Package mutation реализует персистентную очередь изменяющих запросов,
// которые воспроизводятся по порядку после восстановления связи.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fieldops/internal/client/api"
	"github.com/iudanet/fieldops/internal/client/storage"
	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/internal/validation"
)

//go:generate moq -out replayer_mock.go . Replayer

// Replayer performs a stored mutation against the backend.
type Replayer interface {
	Replay(ctx context.Context, req *models.MutationRequest) error
}

// Connectivity is the online/offline signal the engine follows.
type Connectivity interface {
	Online() bool
	Subscribe(fn func(online bool)) func()
}

var (
	// ErrOffline возвращается операциями, требующими связи с backend
	ErrOffline = errors.New("backend is offline")

	// ErrReplayInProgress запись сейчас воспроизводится и не может быть удалена
	ErrReplayInProgress = errors.New("entry is being replayed")
)

// SubmitResult describes how Submit delivered a mutation.
type SubmitResult struct {
	ID     uint64 // ID записи очереди, если мутация отложена
	Queued bool
}

// Option настраивает Engine
type Option func(*Engine)

// WithFailurePolicy задает политику обработки неудачных воспроизведений
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithMetadata включает сохранение времени последней успешной выгрузки
func WithMetadata(meta storage.MetadataStorage) Option {
	return func(e *Engine) {
		e.meta = meta
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine is the mutation queue. All replays, from Drain and RetryOne alike,
// run one at a time in id order.
type Engine struct {
	store     storage.QueueStorage
	meta      storage.MetadataStorage
	replayer  Replayer
	conn      Connectivity
	policy    FailurePolicy
	now       func() time.Time
	logger    *slog.Logger
	listeners map[int]func(Event)
	replayMu  sync.Mutex // один воспроизводящий writer
	stateMu   sync.Mutex // защищает inflight и удаление записей
	obsMu     sync.Mutex
	nextSub   int
	inflight  uint64 // запись, которая воспроизводится сейчас; 0 если нет
}

// NewEngine creates a mutation queue engine.
func NewEngine(store storage.QueueStorage, replayer Replayer, conn Connectivity, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		replayer:  replayer,
		conn:      conn,
		policy:    KeepAll,
		now:       time.Now,
		logger:    logger,
		listeners: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit delivers a mutation directly when online. When offline, or when the
// direct attempt fails with a retryable error, the mutation is queued.
// Other failures are returned to the caller without queueing.
func (e *Engine) Submit(ctx context.Context, req *models.MutationRequest) (*SubmitResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if !e.conn.Online() {
		id, err := e.Enqueue(ctx, req)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{ID: id, Queued: true}, nil
	}

	withKey := withIdempotencyKey(req)
	err := e.replayer.Replay(ctx, withKey)
	if err == nil {
		return &SubmitResult{}, nil
	}
	if api.Classify(err) != api.ClassRetryable {
		return nil, fmt.Errorf("mutation rejected: %w", err)
	}

	e.logger.Warn("Direct delivery failed, queueing mutation", "label", req.Label, "error", err)

	// Тот же ключ идемпотентности, что и в неудачной попытке
	id, qerr := e.Enqueue(ctx, withKey)
	if qerr != nil {
		return nil, qerr
	}
	return &SubmitResult{ID: id, Queued: true}, nil
}

// Enqueue persists a pending entry and returns its id.
func (e *Engine) Enqueue(ctx context.Context, req *models.MutationRequest) (uint64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	entry := models.NewQueueEntry(withIdempotencyKey(req), e.now())
	id, err := e.store.AddEntry(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	e.logger.Info("Mutation queued", "entry_id", id, "method", entry.Method, "url", entry.URL, "label", entry.Label)
	e.emit(Event{Type: EventEnqueued, EntryID: id})

	return id, nil
}

// Drain replays every pending and failed entry in id order, one at a time.
// A failed entry does not stop the drain, and an entry discarded after the
// drain started is skipped. When offline Drain replays nothing, returns zero
// counts and still emits EventDrained.
func (e *Engine) Drain(ctx context.Context) (*DrainResult, error) {
	result := &DrainResult{}
	if !e.conn.Online() {
		e.logger.Debug("Skipping drain while offline")
		e.emit(Event{Type: EventDrained})
		return result, nil
	}

	e.replayMu.Lock()
	defer e.replayMu.Unlock()

	entries, err := e.store.ListEntries(ctx, models.QueueStatusPending, models.QueueStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued mutations: %w", err)
	}

	e.logger.Info("Starting drain", "count", len(entries))

	for _, listed := range entries {
		if err := ctx.Err(); err != nil {
			e.emit(Event{Type: EventDrained, Synced: result.Synced, Failed: result.Failed})
			return result, err
		}

		entry, err := e.claim(ctx, listed.ID)
		if errors.Is(err, storage.ErrEntryNotFound) {
			e.logger.Debug("Entry removed before replay, skipping", "entry_id", listed.ID)
			continue
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, &EntryError{ID: listed.ID, Label: listed.Label, Err: err})
			continue
		}

		e.replayClaimed(ctx, entry, result)
		e.release()
	}

	if result.Synced > 0 && e.meta != nil {
		if err := e.meta.SaveLastDrainTimestamp(ctx, e.now().Unix()); err != nil {
			e.logger.Warn("Failed to save last drain timestamp", "error", err)
		}
	}

	e.logger.Info("Drain completed", "synced", result.Synced, "failed", result.Failed, "discarded", result.Discarded)
	e.emit(Event{Type: EventDrained, Synced: result.Synced, Failed: result.Failed})

	return result, nil
}

// replayClaimed воспроизводит запись и учитывает результат в result
func (e *Engine) replayClaimed(ctx context.Context, entry *models.QueueEntry, result *DrainResult) {
	replayErr := e.replayer.Replay(ctx, entry.Request())
	if replayErr == nil {
		if err := e.store.DeleteEntry(ctx, entry.ID); err != nil && !errors.Is(err, storage.ErrEntryNotFound) {
			// Запрос доставлен, но запись осталась: повтор возможен, backend увидит Idempotency-Key
			e.logger.Error("Failed to remove replayed entry", "entry_id", entry.ID, "error", err)
			result.Errors = append(result.Errors, &EntryError{ID: entry.ID, Label: entry.Label, Err: err})
		}
		result.Synced++
		e.logger.Debug("Entry replayed", "entry_id", entry.ID)
		return
	}

	result.Failed++
	result.Errors = append(result.Errors, &EntryError{ID: entry.ID, Label: entry.Label, Err: replayErr})
	if discarded := e.recordFailure(ctx, entry, replayErr); discarded {
		result.Discarded++
	}
}

// claim перечитывает запись и помечает ее как воспроизводимую.
// Discard не удалит помеченную запись до release.
func (e *Engine) claim(ctx context.Context, id uint64) (*models.QueueEntry, error) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	entry, err := e.store.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.inflight = id
	return entry, nil
}

func (e *Engine) release() {
	e.stateMu.Lock()
	e.inflight = 0
	e.stateMu.Unlock()
}

// RetryOne replays a single entry. On success the entry is removed, on
// failure its retry count and last error are updated and the replay error
// is returned.
func (e *Engine) RetryOne(ctx context.Context, id uint64) error {
	if !e.conn.Online() {
		return ErrOffline
	}

	e.replayMu.Lock()
	defer e.replayMu.Unlock()

	entry, err := e.claim(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get entry %d: %w", id, err)
	}
	defer e.release()

	replayErr := e.replayer.Replay(ctx, entry.Request())
	if replayErr != nil {
		e.recordFailure(ctx, entry, replayErr)
		return fmt.Errorf("replay of entry %d failed: %w", id, replayErr)
	}

	if err := e.store.DeleteEntry(ctx, id); err != nil && !errors.Is(err, storage.ErrEntryNotFound) {
		return fmt.Errorf("failed to remove replayed entry %d: %w", id, err)
	}

	e.logger.Info("Entry replayed", "entry_id", id)
	e.emit(Event{Type: EventSynced, EntryID: id})

	return nil
}

// Discard removes an entry without replaying it. An entry whose replay is
// in flight cannot be discarded and ErrReplayInProgress is returned.
func (e *Engine) Discard(ctx context.Context, id uint64) error {
	e.stateMu.Lock()
	if id != 0 && e.inflight == id {
		e.stateMu.Unlock()
		return fmt.Errorf("failed to discard entry %d: %w", id, ErrReplayInProgress)
	}
	err := e.store.DeleteEntry(ctx, id)
	e.stateMu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to discard entry %d: %w", id, err)
	}

	e.logger.Info("Entry discarded", "entry_id", id)
	e.emit(Event{Type: EventDiscarded, EntryID: id})

	return nil
}

// List returns all queued entries ordered by id.
func (e *Engine) List(ctx context.Context) ([]*models.QueueEntry, error) {
	entries, err := e.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued mutations: %w", err)
	}
	return entries, nil
}

// PendingCount returns the number of pending entries, 0 on storage error.
func (e *Engine) PendingCount(ctx context.Context) int {
	return e.count(ctx, models.QueueStatusPending)
}

// FailedCount returns the number of failed entries, 0 on storage error.
func (e *Engine) FailedCount(ctx context.Context) int {
	return e.count(ctx, models.QueueStatusFailed)
}

// LastDrain возвращает время последней выгрузки, синхронизировавшей хотя бы одну запись.
// Нулевое время, если выгрузок не было.
func (e *Engine) LastDrain(ctx context.Context) (time.Time, error) {
	if e.meta == nil {
		return time.Time{}, nil
	}
	ts, err := e.meta.GetLastDrainTimestamp(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last drain timestamp: %w", err)
	}
	if ts == 0 {
		return time.Time{}, nil
	}
	return time.Unix(ts, 0).UTC(), nil
}

// Subscribe registers fn for queue events and returns an unsubscribe func.
// fn runs synchronously on the goroutine that changed the queue.
func (e *Engine) Subscribe(fn func(Event)) func() {
	e.obsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.listeners[id] = fn
	e.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.obsMu.Lock()
			delete(e.listeners, id)
			e.obsMu.Unlock()
		})
	}
}

// Run drains the queue on start when online and after every offline to
// online transition, until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	trigger := make(chan struct{}, 1)
	unsubscribe := e.conn.Subscribe(func(online bool) {
		if !online {
			return
		}
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if e.conn.Online() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger:
			if _, err := e.Drain(ctx); err != nil && ctx.Err() == nil {
				e.logger.Error("Automatic drain failed", "error", err)
			}
		}
	}
}

// recordFailure помечает запись как failed либо удаляет ее согласно политике.
// Возвращает true, если запись удалена.
func (e *Engine) recordFailure(ctx context.Context, entry *models.QueueEntry, replayErr error) bool {
	entry.Retries++
	entry.LastError = replayErr.Error()
	entry.Status = models.QueueStatusFailed

	e.logger.Warn("Replay failed",
		"entry_id", entry.ID,
		"retries", entry.Retries,
		"class", api.Classify(replayErr).String(),
		"error", replayErr,
	)
	e.emit(Event{Type: EventReplayFailed, EntryID: entry.ID, Err: replayErr})

	if e.policy(entry, replayErr) == ActionDiscard {
		if err := e.store.DeleteEntry(ctx, entry.ID); err != nil && !errors.Is(err, storage.ErrEntryNotFound) {
			e.logger.Error("Failed to discard entry", "entry_id", entry.ID, "error", err)
			return false
		}
		e.logger.Info("Entry discarded by policy", "entry_id", entry.ID)
		e.emit(Event{Type: EventDiscarded, EntryID: entry.ID})
		return true
	}

	if err := e.store.UpdateEntry(ctx, entry); err != nil {
		// Запись могла быть удалена оператором во время воспроизведения
		if !errors.Is(err, storage.ErrEntryNotFound) {
			e.logger.Error("Failed to update failed entry", "entry_id", entry.ID, "error", err)
		}
	}
	return false
}

func (e *Engine) count(ctx context.Context, status models.QueueStatus) int {
	n, err := e.store.CountByStatus(ctx, status)
	if err != nil {
		e.logger.Warn("Failed to count entries", "status", status, "error", err)
		return 0
	}
	return n
}

func (e *Engine) emit(ev Event) {
	e.obsMu.Lock()
	listeners := make([]func(Event), 0, len(e.listeners))
	for _, fn := range e.listeners {
		listeners = append(listeners, fn)
	}
	e.obsMu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

func validateRequest(req *models.MutationRequest) error {
	if req == nil {
		return errors.New("mutation request is nil")
	}
	if err := validation.ValidateMethod(req.Method); err != nil {
		return err
	}
	if err := validation.ValidateURL(req.URL); err != nil {
		return err
	}
	return validation.ValidateLabel(req.Label)
}

// withIdempotencyKey возвращает копию запроса с заголовком Idempotency-Key
func withIdempotencyKey(req *models.MutationRequest) *models.MutationRequest {
	for k := range req.Headers {
		if http.CanonicalHeaderKey(k) == api.HeaderIdempotencyKey {
			return req
		}
	}

	headers := make(map[string]string, len(req.Headers)+1)
	for k, v := range req.Headers {
		headers[k] = v
	}
	headers[api.HeaderIdempotencyKey] = uuid.NewString()

	out := *req
	out.Headers = headers
	return &out
}
