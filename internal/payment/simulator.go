// Package payment defines the gateway contract the flow controller pays
// through, plus the simulator that stands in for a real processor. A
// production gateway integration replaces the simulator without touching
// the controller.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Receipt is the gateway's resolution. ReferenceCode is set only when OK
// is true; the simulator does not guarantee uniqueness across bookings.
type Receipt struct {
	OK            bool
	ReferenceCode string
}

// Gateway processes one payment attempt. Submit blocks until the
// processor resolves or ctx is done; cancellation and deadline errors
// come back as ctx.Err().
type Gateway interface {
	Submit(ctx context.Context, method string, amount int64) (Receipt, error)
}

const (
	// DefaultDelay models network and processor latency.
	DefaultDelay = 2500 * time.Millisecond
	// DefaultSuccessRate matches the long-standing simulated gateway odds.
	DefaultSuccessRate = 0.85
)

// Simulator resolves payments after a fixed delay with a fixed success
// probability, issuing a 10-digit numeric reference code on success.
type Simulator struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator builds a simulator. A nil rng seeds from the clock;
// tests pass a seeded source for determinism.
func NewSimulator(delay time.Duration, successRate float64, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{delay: delay, successRate: successRate, rng: rng}
}

func (s *Simulator) Submit(ctx context.Context, method string, amount int64) (Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	s.mu.Lock()
	ok := s.rng.Float64() < s.successRate
	var ref string
	if ok {
		ref = fmt.Sprintf("%010d", 1000000000+s.rng.Int63n(9000000000))
	}
	s.mu.Unlock()

	if !ok {
		return Receipt{OK: false}, nil
	}
	return Receipt{OK: true, ReferenceCode: ref}, nil
}
