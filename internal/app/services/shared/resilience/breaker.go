package resilience

import (
	"sync"
	"time"

	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"
)

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return constvars.BreakerStateClosed
	case StateOpen:
		return constvars.BreakerStateOpen
	case StateHalfOpen:
		return constvars.BreakerStateHalfOpen
	default:
		return "unknown"
	}
}

// Breaker counts consecutive transient failures shared by every caller of
// one upstream. After threshold failures it rejects calls for cooldown,
// then lets exactly one probe through.
type Breaker struct {
	mu            sync.Mutex
	threshold     int
	cooldown      time.Duration
	now           func() time.Time
	state         BreakerState
	failures      int
	openedAt      time.Time
	probeInFlight bool
}

// NewBreaker uses time.Now when now is nil.
func NewBreaker(threshold int, cooldown time.Duration, now func() time.Time) *Breaker {
	if now == nil {
		now = time.Now
	}
	if threshold < 1 {
		threshold = 1
	}
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       now,
		state:     StateClosed,
	}
}

// Allow returns exceptions.ErrKindBreakerOpen when the call must not reach
// the network. A nil return in half-open state reserves the single probe;
// the caller must then report the outcome through one of the Record
// methods or Abandon.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cooldown {
			return exceptions.ErrKindBreakerOpen
		}
		b.state = StateHalfOpen
		b.probeInFlight = true
		return nil
	case StateHalfOpen:
		if b.probeInFlight {
			return exceptions.ErrKindBreakerOpen
		}
		b.probeInFlight = true
		return nil
	default:
		return nil
	}
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.close()
	}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.threshold {
			b.trip()
		}
	case StateHalfOpen:
		b.trip()
	}
}

// RecordNeutral reports an upstream answer that is neither a success nor
// a transient failure, such as a 4xx. It leaves the failure count alone,
// but a half-open probe that got any answer proves the upstream is back.
func (b *Breaker) RecordNeutral() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.close()
	}
}

// Abandon releases a reserved probe whose call never produced an outcome,
// for example because the caller went away.
func (b *Breaker) Abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.probeInFlight = false
	}
}

// State reports half-open as soon as the cooldown has elapsed, even if no
// call has arrived yet to perform the transition.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cooldown {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.failures = 0
	b.probeInFlight = false
}

func (b *Breaker) close() {
	b.state = StateClosed
	b.failures = 0
	b.probeInFlight = false
}
