package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/pkg/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Settlement identifies a submitted payment waiting for its outcome.
type Settlement struct {
	SessionID string
	AttemptID string

	due time.Time
}

// Settler resolves one submitted payment once its round trip has elapsed.
type Settler interface {
	Resolve(ctx context.Context, attemptID string) (*domain.PaymentAttempt, error)
}

// Dispatcher holds each submitted payment for the simulated round trip and
// then resolves it. Settlements are sharded by session id so one session's
// payments resolve in submission order. The round trip is measured from
// Enqueue, so a payment's wait does not depend on what else its shard holds.
type Dispatcher struct {
	workers []chan Settlement
	settler Settler
	clock   ports.Clock
	delay   time.Duration
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers shards.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, settler Settler, clock ports.Clock, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Settlement, numWorkers),
		settler: settler,
		clock:   clock,
		delay:   domain.PaymentSubmitDelay,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Settlement, channelBuffer)
	}
	return d
}

// Start launches one goroutine per shard. When ctx is cancelled each shard
// still resolves everything it has accepted before returning.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runShard(ctx, i, ch)
	}
}

// Wait blocks until every shard has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue stamps the settlement's due time and hands it to its shard. Shards
// drain their channel continuously, so the send only waits on a burst larger
// than channelBuffer.
func (d *Dispatcher) Enqueue(s Settlement) {
	s.due = d.clock.Now().Add(d.delay)
	idx := d.shardIndex(s.SessionID)
	d.workers[idx] <- s
	metrics.PaymentsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

// runShard keeps accepted settlements in a FIFO. Every settlement waits the
// same delay, so the FIFO is also ordered by due time and only its head needs
// a timer.
func (d *Dispatcher) runShard(ctx context.Context, id int, ch <-chan Settlement) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	var (
		pending []Settlement
		timer   <-chan time.Time
	)
	arm := func() {
		timer = nil
		if len(pending) > 0 {
			timer = d.clock.After(pending[0].due.Sub(d.clock.Now()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch, pending)
			return
		case s, ok := <-ch:
			if !ok {
				d.drain(id, nil, pending)
				return
			}
			pending = append(pending, s)
			metrics.PaymentsQueueDepth.WithLabelValues(label).Set(float64(len(pending) + len(ch)))
			if len(pending) == 1 {
				arm()
			}
		case <-timer:
			now := d.clock.Now()
			for len(pending) > 0 && !pending[0].due.After(now) {
				d.resolve(id, pending[0])
				pending = pending[1:]
			}
			metrics.PaymentsQueueDepth.WithLabelValues(label).Set(float64(len(pending) + len(ch)))
			arm()
		}
	}
}

// drain resolves everything a stopping shard still holds, each at its due time.
func (d *Dispatcher) drain(id int, ch <-chan Settlement, pending []Settlement) {
collect:
	for ch != nil {
		select {
		case s := <-ch:
			pending = append(pending, s)
		default:
			break collect
		}
	}
	for _, s := range pending {
		if wait := s.due.Sub(d.clock.Now()); wait > 0 {
			<-d.clock.After(wait)
		}
		d.resolve(id, s)
	}
}

func (d *Dispatcher) resolve(id int, s Settlement) {
	// The settlement outlives request and shutdown cancellation.
	attempt, err := d.settler.Resolve(context.Background(), s.AttemptID)
	if err != nil {
		d.log.Error().Err(err).
			Str("attempt_id", s.AttemptID).
			Str("session_id", s.SessionID).
			Int("worker_id", id).
			Msg("payment settlement failed")
		return
	}
	lag := d.clock.Now().Sub(s.due) + d.delay
	metrics.PaymentSettlementDuration.WithLabelValues(string(attempt.Outcome)).Observe(lag.Seconds())
}
