package routing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultDelay пауза после каждой попытки, держит клиент ниже лимита сервиса
	DefaultDelay = 1100 * time.Millisecond
	// DefaultCooldown пауза после ответа 429
	DefaultCooldown = 5 * time.Second

	maxResponseBody = 8 << 20
)

// HTTPDoer выполняет HTTP запросы (обычно *http.Client)
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the outcome of a single lookup.
type Result struct {
	Err  error
	Body []byte
}

type lookupRequest struct {
	ctx    context.Context
	result chan Result
	url    string
}

// QueueOption настраивает LookupQueue
type QueueOption func(*LookupQueue)

// WithDelay задает паузу между запросами
func WithDelay(d time.Duration) QueueOption {
	return func(q *LookupQueue) {
		q.delay = d
	}
}

// WithCooldown задает паузу после ответа 429
func WithCooldown(d time.Duration) QueueOption {
	return func(q *LookupQueue) {
		q.cooldown = d
	}
}

// LookupQueue throttles GET lookups to one external service. Requests are
// served in FIFO order by a single worker goroutine that is started on
// demand and exits when the queue is empty.
type LookupQueue struct {
	client   HTTPDoer
	logger   *slog.Logger
	pending  []*lookupRequest
	delay    time.Duration
	cooldown time.Duration
	mu       sync.Mutex
	running  bool
}

// NewLookupQueue creates a lookup queue.
func NewLookupQueue(client HTTPDoer, logger *slog.Logger, opts ...QueueOption) *LookupQueue {
	q := &LookupQueue{
		client:   client,
		logger:   logger,
		delay:    DefaultDelay,
		cooldown: DefaultCooldown,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Request appends a lookup to the queue. The returned channel receives
// exactly one Result. ctx is the request's cancellation token: it is checked
// before the call is made, and a response that arrives after ctx is done is
// dropped in favor of ctx.Err(). An in-flight call is never interrupted.
func (q *LookupQueue) Request(ctx context.Context, url string) <-chan Result {
	req := &lookupRequest{
		ctx:    ctx,
		url:    url,
		result: make(chan Result, 1),
	}

	q.mu.Lock()
	q.pending = append(q.pending, req)
	start := !q.running
	q.running = true
	q.mu.Unlock()

	if start {
		go q.process()
	}

	return req.result
}

// Do is Request that waits for the result or for ctx to be done.
func (q *LookupQueue) Do(ctx context.Context, url string) ([]byte, error) {
	select {
	case res := <-q.Request(ctx, url):
		return res.Body, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len возвращает количество ожидающих запросов
func (q *LookupQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *LookupQueue) process() {
	for {
		req := q.pop()
		if req == nil {
			return
		}

		if err := req.ctx.Err(); err != nil {
			// Отмененный запрос пропускаем без паузы
			req.result <- Result{Err: err}
			continue
		}

		wait := q.delay
		body, status, err := q.fetch(req)

		switch {
		case err != nil:
			q.logger.Debug("Lookup failed", "url", req.url, "error", err)
			q.finish(req, Result{Err: err})
		case status == http.StatusTooManyRequests:
			q.logger.Warn("Routing service rate limit hit, cooling down", "cooldown", q.cooldown)
			q.pushFront(req)
			wait = q.cooldown
		case status < 200 || status >= 300:
			q.finish(req, Result{Err: &StatusError{StatusCode: status, Body: strings.TrimSpace(string(body))}})
		default:
			q.finish(req, Result{Body: body})
		}

		time.Sleep(wait)
	}
}

// pop извлекает голову очереди; при пустой очереди останавливает worker
func (q *LookupQueue) pop() *lookupRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		q.running = false
		return nil
	}

	req := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return req
}

func (q *LookupQueue) pushFront(req *lookupRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append([]*lookupRequest{req}, q.pending...)
}

// finish доставляет результат, если запрос не был отменен во время вызова
func (q *LookupQueue) finish(req *lookupRequest, res Result) {
	if err := req.ctx.Err(); err != nil {
		res = Result{Err: err}
	}
	req.result <- res
}

func (q *LookupQueue) fetch(req *lookupRequest) ([]byte, int, error) {
	// Отмена вызывающего не прерывает уже начатый запрос
	httpReq, err := http.NewRequestWithContext(context.WithoutCancel(req.ctx), http.MethodGet, req.url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := q.client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("lookup request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
