package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/api/metrics"
	"github.com/backend-server/accounts-api/internal/core/domain"
	"github.com/backend-server/accounts-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher delivers registration audit entries to the sink on a fixed set
// of workers, sharded by user id. Submission is non-blocking: the register
// path returns before delivery, and sink failures stay on the worker side.
type Dispatcher struct {
	workers []chan domain.RegistrationEntry
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.RegistrationEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.RegistrationEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// entries still in flight at shutdown may be lost, which is acceptable for
// this log.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Submit hands an entry to the worker responsible for its user id. A full
// shard drops the entry rather than block the caller.
func (d *Dispatcher) Submit(entry domain.RegistrationEntry) {
	select {
	case d.workers[d.shardIndex(entry.UserID)] <- entry:
	default:
		metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("user_id", entry.UserID).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.RegistrationEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("user_id", entry.UserID).
					Int("worker_id", id).
					Msg("registration audit write failed")
			}
		}
	}
}
