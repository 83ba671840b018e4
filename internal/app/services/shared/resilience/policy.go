package resilience

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/utils"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxDrainBytes = 64 << 10

type Policy struct {
	retryDelays []time.Duration
	breaker     *Breaker
	limiter     *rate.Limiter
	log         *zap.Logger
}

// NewPolicy composes retry over the shared breaker. A nil limiter means
// outbound calls are not throttled.
func NewPolicy(retryDelays []time.Duration, breaker *Breaker, limiter *rate.Limiter, logger *zap.Logger) contracts.ResiliencePolicy {
	delays := make([]time.Duration, len(retryDelays))
	copy(delays, retryDelays)
	return &Policy{
		retryDelays: delays,
		breaker:     breaker,
		limiter:     limiter,
		log:         logger,
	}
}

// NewLimiter returns nil for a non-positive rate.
func NewLimiter(requestsPerSecond int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
}

// IsTransientStatus reports the statuses worth retrying: 408 and 5xx.
func IsTransientStatus(code int) bool {
	return code == constvars.StatusRequestTimeout || code >= constvars.StatusInternalServerError
}

func (p *Policy) BreakerState() string {
	return p.breaker.State().String()
}

// Execute runs call until it yields a non-transient response or the retry
// delays are used up. The last upstream response, even a 5xx, is handed
// back as is. Errors are returned only when no response was obtained:
// they wrap ErrKindBreakerOpen when the breaker rejected the call,
// ErrKindTransientUpstreamFailure for transport errors, or the context
// error on cancellation.
func (p *Policy) Execute(ctx context.Context, route string, call contracts.UpstreamCall) (*http.Response, error) {
	requestID := utils.GetRequestID(ctx)

	var last *http.Response
	attempt := 0

	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attempt++

		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		if err := p.breaker.Allow(); err != nil {
			if last != nil {
				// Breaker tripped during this sequence; keep the answer we have.
				return nil
			}
			return err
		}

		resp, err := call(ctx)
		if err != nil {
			if ctx.Err() != nil {
				p.breaker.Abandon()
				return ctx.Err()
			}
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) {
				// Failed before reaching the network.
				p.breaker.Abandon()
				return err
			}
			p.breaker.RecordFailure()
			drainAndClose(last)
			last = nil
			p.logAttempt(requestID, route, attempt, zap.Error(err))
			return retry.RetryableError(fmt.Errorf("%w: %w", exceptions.ErrKindTransientUpstreamFailure, err))
		}

		drainAndClose(last)
		last = resp

		if IsTransientStatus(resp.StatusCode) {
			p.breaker.RecordFailure()
			p.logAttempt(requestID, route, attempt, zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode))
			return retry.RetryableError(fmt.Errorf("%w: status %d", exceptions.ErrKindTransientUpstreamFailure, resp.StatusCode))
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			p.breaker.RecordSuccess()
		} else {
			p.breaker.RecordNeutral()
		}
		return nil
	})

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			drainAndClose(last)
			return nil, err
		}
		if last != nil {
			return last, nil
		}
		return nil, err
	}
	return last, nil
}

func (p *Policy) backoff() retry.Backoff {
	next := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		if next >= len(p.retryDelays) {
			return 0, true
		}
		delay := p.retryDelays[next]
		next++
		return delay, false
	})
}

func (p *Policy) logAttempt(requestID, route string, attempt int, fields ...zap.Field) {
	p.log.Warn("resilience.Policy transient upstream failure",
		append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRouteKey, route),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.String(constvars.LoggingBreakerKey, p.breaker.State().String()),
		}, fields...)...,
	)
}

func drainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	io.CopyN(io.Discard, resp.Body, maxDrainBytes)
	resp.Body.Close()
}
