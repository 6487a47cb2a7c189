package relay

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/iudanet/fieldops/internal/models"
)

// DefaultReceiverTTL время жизни незавершенной передачи
const DefaultReceiverTTL = 10 * time.Minute

// Progress is the state of the current transfer after a scan.
type Progress struct {
	Payload  *models.RelayPayload // заполнен только при Complete
	Received int
	Total    int
	Complete bool
}

// Receiver reassembles chunk scans into a payload. The wire format has no
// transfer id, so a receiver tracks exactly one transfer at a time: a chunk
// that declares a different total starts a new transfer, and chunks older
// than the TTL are forgotten.
type Receiver struct {
	chunks *ttlcache.Cache[int, string]
	logger *slog.Logger
	mu     sync.Mutex
	total  int
}

// NewReceiver creates a receiver whose partial transfers expire after ttl.
func NewReceiver(ttl time.Duration, logger *slog.Logger) *Receiver {
	if ttl <= 0 {
		ttl = DefaultReceiverTTL
	}

	return &Receiver{
		chunks: ttlcache.New[int, string](
			ttlcache.WithTTL[int, string](ttl),
			ttlcache.WithDisableTouchOnHit[int, string](),
		),
		logger: logger,
	}
}

// Feed processes one scanned string. A scan without a chunk header is a
// complete payload on its own. Errors wrap ErrCorruptChunk or
// ErrCorruptPayload; an incomplete transfer is not an error.
func (r *Receiver) Feed(scan string) (Progress, error) {
	scan = strings.TrimSpace(scan)

	if !isChunk(scan) {
		p, err := unmarshalPayload(scan)
		if err != nil {
			return Progress{}, err
		}
		return Progress{Complete: true, Received: 1, Total: 1, Payload: p}, nil
	}

	chunk, err := ParseChunk(scan)
	if err != nil {
		return r.Status(), err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.expireLocked()

	if r.total != 0 && r.total != chunk.Total {
		r.logger.Info("Chunk total changed, starting new transfer", "old_total", r.total, "new_total", chunk.Total)
		r.chunks.DeleteAll()
	}
	r.total = chunk.Total

	// Повторный скан того же индекса перезаписывает данные
	r.chunks.Set(chunk.Index, chunk.Data, ttlcache.DefaultTTL)

	received := r.chunks.Len()
	if received < r.total {
		return Progress{Received: received, Total: r.total}, nil
	}

	var b strings.Builder
	for i := 0; i < r.total; i++ {
		item := r.chunks.Get(i)
		if item == nil {
			// Фрагмент истек между проверками
			return Progress{Received: r.chunks.Len(), Total: r.total}, nil
		}
		b.WriteString(item.Value())
	}

	total := r.total
	r.resetLocked()

	p, err := unmarshalPayload(b.String())
	if err != nil {
		return Progress{Received: total, Total: total}, fmt.Errorf("reassembled %d chunks: %w", total, err)
	}

	r.logger.Info("Relay payload received", "id", p.ID, "chunks", total)

	return Progress{Complete: true, Received: total, Total: total, Payload: p}, nil
}

// Status returns the progress of the transfer in flight.
func (r *Receiver) Status() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expireLocked()
	if r.total == 0 {
		return Progress{}
	}
	return Progress{Received: r.chunks.Len(), Total: r.total}
}

// Missing returns the chunk indexes not yet received, in order.
func (r *Receiver) Missing() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expireLocked()
	var missing []int
	for i := 0; i < r.total; i++ {
		if !r.chunks.Has(i) {
			missing = append(missing, i)
		}
	}
	return missing
}

// Reset abandons the transfer in flight.
func (r *Receiver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

func (r *Receiver) resetLocked() {
	r.chunks.DeleteAll()
	r.total = 0
}

// expireLocked удаляет устаревшие фрагменты; пустой набор означает отсутствие передачи
func (r *Receiver) expireLocked() {
	r.chunks.DeleteExpired()
	if r.chunks.Len() == 0 {
		r.total = 0
	}
}
