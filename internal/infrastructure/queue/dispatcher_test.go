package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautybook/marketplace/internal/core/domain"
)

type wallClock struct{}

func (wallClock) Now() time.Time                         { return time.Now() }
func (wallClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type recordingSettler struct {
	mu   sync.Mutex
	seen []string
	at   map[string]time.Time
	done chan struct{}
}

func newRecordingSettler(capacity int) *recordingSettler {
	return &recordingSettler{at: make(map[string]time.Time), done: make(chan struct{}, capacity)}
}

func (r *recordingSettler) Resolve(_ context.Context, attemptID string) (*domain.PaymentAttempt, error) {
	r.mu.Lock()
	r.seen = append(r.seen, attemptID)
	r.at[attemptID] = time.Now()
	r.mu.Unlock()
	r.done <- struct{}{}
	return &domain.PaymentAttempt{ID: attemptID, Outcome: domain.OutcomeSucceeded}, nil
}

func (r *recordingSettler) await(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for settlement %d", i)
		}
	}
}

func newTestDispatcher(workers int, settler Settler, delay time.Duration) *Dispatcher {
	d := NewDispatcher(workers, settler, wallClock{}, zerolog.Nop())
	d.delay = delay
	return d
}

func TestDispatcher_PerSessionOrdering(t *testing.T) {
	settler := newRecordingSettler(10)
	d := newTestDispatcher(4, settler, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for _, id := range []string{"a1", "a2", "a3"} {
		d.Enqueue(Settlement{SessionID: "same-session", AttemptID: id})
	}
	settler.await(t, 3)
	cancel()
	d.Wait()

	settler.mu.Lock()
	defer settler.mu.Unlock()
	if len(settler.seen) != 3 || settler.seen[0] != "a1" || settler.seen[1] != "a2" || settler.seen[2] != "a3" {
		t.Fatalf("expected in-order settlement, got %v", settler.seen)
	}
}

func TestDispatcher_SharedShardDoesNotStackDelays(t *testing.T) {
	const delay = 200 * time.Millisecond
	settler := newRecordingSettler(10)
	d := newTestDispatcher(4, settler, delay)
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		d.Wait()
	}()
	d.Start(ctx)

	// Three sessions that land on the same shard.
	shard := d.shardIndex("s0")
	sessions := []string{"s0"}
	for i := 1; len(sessions) < 3; i++ {
		if id := fmt.Sprintf("s%d", i); d.shardIndex(id) == shard {
			sessions = append(sessions, id)
		}
	}

	start := time.Now()
	for _, sid := range sessions {
		d.Enqueue(Settlement{SessionID: sid, AttemptID: sid + "-attempt"})
	}
	settler.await(t, len(sessions))

	settler.mu.Lock()
	defer settler.mu.Unlock()
	for _, sid := range sessions {
		elapsed := settler.at[sid+"-attempt"].Sub(start)
		if elapsed < delay || elapsed > delay+delay/2 {
			t.Errorf("%s settled after %v, want about %v", sid, elapsed, delay)
		}
	}
}

func TestDispatcher_DrainsOnShutdown(t *testing.T) {
	settler := newRecordingSettler(10)
	d := newTestDispatcher(2, settler, 30*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 4; i++ {
		d.Enqueue(Settlement{SessionID: fmt.Sprintf("s%d", i), AttemptID: fmt.Sprintf("a%d", i)})
	}
	cancel()
	d.Wait()

	settler.mu.Lock()
	defer settler.mu.Unlock()
	if len(settler.seen) != 4 {
		t.Fatalf("expected every accepted settlement to resolve, got %v", settler.seen)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, nil, wallClock{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	if d.delay != domain.PaymentSubmitDelay {
		t.Fatalf("expected the %v round trip, got %v", domain.PaymentSubmitDelay, d.delay)
	}
	first := d.shardIndex("session-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("session-42") != first {
			t.Fatalf("shard index must be deterministic")
		}
	}
	if first < 0 || first >= defaultWorkers {
		t.Fatalf("shard index out of range: %d", first)
	}
}
