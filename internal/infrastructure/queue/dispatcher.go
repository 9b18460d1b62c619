package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
	"github.com/Nowell222/green-path-ai/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans audit events out to a fixed set of workers using consistent
// hashing on the browsing-context ID, preserving per-context event ordering.
// It implements ports.AuditSink; a full channel or a failed insert never
// reaches the authentication path.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its context ID,
// dropping it when that worker's buffer is full.
func (d *Dispatcher) Enqueue(event domain.AuthEvent) {
	ch := d.workers[d.shardIndex(event.ContextID)]
	select {
	case ch <- event:
	default:
		d.log.Warn().Str("context_id", event.ContextID).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a context ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(contextID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contextID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.InsertEvent(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("context_id", event.ContextID).
					Str("kind", string(event.Kind)).
					Int("worker_id", id).
					Msg("audit event insert failed")
			}
		}
	}
}
