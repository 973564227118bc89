package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/config"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/metrics"
)

// QueuePoller keeps a queue snapshot fresh. It is either idle or polling:
// Start performs one immediate fetch and then one per interval tick until
// the returned handle is cancelled. Each successful fetch replaces the
// whole snapshot through the apply callback; entries missing from the new
// response are simply gone (last fetch wins, no merging).
//
// Poll failures are swallowed: the queue is a soft view that heals itself
// on the next tick. A circuit breaker keeps a dead backend from being
// hammered every tick.
type QueuePoller struct {
	queue    ports.QueueGateway
	interval time.Duration
	apply    func([]domain.QueueToken)
	breaker  *gobreaker.CircuitBreaker
	logger   zerolog.Logger

	mu      sync.Mutex
	seq     uint64 // last poll started
	applied uint64 // last poll whose response was applied
}

// NewQueuePoller wires a poller to a gateway and an apply callback. The
// callback receives the full replacement snapshot and must be safe to call
// from the poller's goroutine.
func NewQueuePoller(queue ports.QueueGateway, interval time.Duration, apply func([]domain.QueueToken), logger zerolog.Logger) *QueuePoller {
	return &QueuePoller{
		queue:    queue,
		interval: interval,
		apply:    apply,
		breaker:  config.NewCircuitBreaker("Queue-Poll"),
		logger:   logger.With().Str("component", "queue_poller").Logger(),
	}
}

// PollHandle cancels a running poller.
type PollHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the recurrence and waits for the polling goroutine to
// exit. After Cancel returns, no further fetch is dispatched and the
// apply callback will not fire again.
func (h *PollHandle) Cancel() {
	h.cancel()
	<-h.done
}

// Start transitions the poller from idle to polling: one immediate fetch,
// then one per tick. The previous handle must be cancelled before a new
// recurrence is started.
func (p *QueuePoller) Start(ctx context.Context) *PollHandle {
	ctx, cancel := context.WithCancel(ctx)
	handle := &PollHandle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		p.poll(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.poll(ctx)
			}
		}
	}()

	return handle
}

// Refresh performs one out-of-band poll, independent of the timer.
// Foreground queue mutations call this so the snapshot reflects the change
// without waiting for the next tick; a failed refresh is not an error for
// the mutation that triggered it.
func (p *QueuePoller) Refresh(ctx context.Context) {
	p.poll(ctx)
}

func (p *QueuePoller) poll(ctx context.Context) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.queue.QueueStatus(ctx)
	})
	if err != nil {
		metrics.QueuePolls.WithLabelValues("error").Inc()
		p.logger.Debug().Err(err).Msg("queue poll failed")
		return
	}
	tokens := result.([]domain.QueueToken)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq < p.applied {
		// A newer poll already landed; applying this response would
		// roll the snapshot back.
		metrics.QueuePolls.WithLabelValues("stale").Inc()
		return
	}
	p.applied = seq
	p.apply(tokens)
	metrics.QueuePolls.WithLabelValues("ok").Inc()
}
