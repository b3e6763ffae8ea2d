package client

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/tair/jewelkraft/pkg/logger"
)

// BreakerState is the state of a Breaker
type BreakerState string

const (
	StateClosed   BreakerState = "closed"
	StateOpen     BreakerState = "open"
	StateHalfOpen BreakerState = "half-open"
)

// ErrCircuitOpen is returned without calling the service while its breaker is open
var ErrCircuitOpen = errors.New("service temporarily unavailable")

// Breaker stops calling a downstream service after consecutive failures and
// probes it again once openFor has elapsed.
type Breaker struct {
	service      string
	maxFailures  int
	openFor      time.Duration
	halfOpenWins int
	now          func() time.Time

	mu        sync.Mutex
	state     BreakerState
	failures  int
	successes int
	openedAt  time.Time
}

// NewBreaker creates a closed breaker for service
func NewBreaker(service string, maxFailures int, openFor time.Duration) *Breaker {
	return &Breaker{
		service:      service,
		maxFailures:  maxFailures,
		openFor:      openFor,
		halfOpenWins: 2,
		now:          time.Now,
		state:        StateClosed,
	}
}

// Do runs fn unless the breaker is open. Only transport errors and bare 5xx
// answers count as failures; a rejected request means the service is up.
func (b *Breaker) Do(fn func() error) error {
	if !b.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	b.record(!isServiceFailure(err))
	return err
}

// State reports the current state
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.openFor {
		b.state = StateHalfOpen
		b.successes = 0
		logger.Logger.Info().
			Str("service", b.service).
			Msg("Circuit half-open, probing service")
	}
	return b.state != StateOpen
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ok {
		switch b.state {
		case StateHalfOpen:
			b.successes++
			if b.successes >= b.halfOpenWins {
				b.state = StateClosed
				b.failures = 0
				logger.Logger.Info().
					Str("service", b.service).
					Msg("Circuit closed after recovery")
			}
		case StateClosed:
			b.failures = 0
		}
		return
	}

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.maxFailures {
		b.state = StateOpen
		b.openedAt = b.now()
		logger.Logger.Warn().
			Str("service", b.service).
			Int("failures", b.failures).
			Msg("Circuit opened")
	}
}

func isServiceFailure(err error) bool {
	if err == nil || errors.Is(err, ErrGenerationFailed) || errors.Is(err, ErrOrderRejected) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
