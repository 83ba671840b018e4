package resilience

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"docplanner-gateway/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

type scriptedCall struct {
	calls   atomic.Int32
	outcome func(attempt int) (*http.Response, error)
	bodies  []*trackingBody
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func (s *scriptedCall) call(ctx context.Context) (*http.Response, error) {
	attempt := int(s.calls.Add(1))
	return s.outcome(attempt)
}

func (s *scriptedCall) respond(code int, body string) *http.Response {
	tracked := &trackingBody{Reader: strings.NewReader(body)}
	s.bodies = append(s.bodies, tracked)
	return &http.Response{StatusCode: code, Body: tracked}
}

func newTestPolicy(breaker *Breaker) *Policy {
	return NewPolicy(testDelays, breaker, nil, zap.NewNop()).(*Policy)
}

func TestPolicy_SuccessFirstAttempt(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusOK, "[]"), nil }

	resp, err := newTestPolicy(NewBreaker(3, time.Minute, nil)).Execute(context.Background(), "GetWeeklySlots", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), s.calls.Load())
}

func TestPolicy_RetriesTransientThenSucceeds(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(attempt int) (*http.Response, error) {
		switch attempt {
		case 1:
			return nil, errors.New("connection reset by peer")
		case 2:
			return s.respond(http.StatusServiceUnavailable, "busy"), nil
		default:
			return s.respond(http.StatusOK, "ok"), nil
		}
	}

	breaker := NewBreaker(5, time.Minute, nil)
	resp, err := newTestPolicy(breaker).Execute(context.Background(), "GetWeeklySlots", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), s.calls.Load())
	assert.True(t, s.bodies[0].closed, "discarded 503 body must be closed")
	assert.False(t, s.bodies[1].closed, "returned body belongs to the caller")
	assert.Equal(t, StateClosed, breaker.State())
}

func TestPolicy_ExhaustedTransientStatusReturnsLastResponse(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusBadGateway, ""), nil }

	resp, err := newTestPolicy(NewBreaker(10, time.Minute, nil)).Execute(context.Background(), "TakeSlot", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(4), s.calls.Load())
}

func TestPolicy_ExhaustedTransportErrorSurfaces(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return nil, errors.New("dial tcp: connection refused") }

	resp, err := newTestPolicy(NewBreaker(10, time.Minute, nil)).Execute(context.Background(), "TakeSlot", s.call)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, exceptions.ErrKindTransientUpstreamFailure)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, int32(4), s.calls.Load())
}

func TestPolicy_ClientErrorIsNotRetried(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusBadRequest, "bad"), nil }

	breaker := NewBreaker(1, time.Minute, nil)
	resp, err := newTestPolicy(breaker).Execute(context.Background(), "TakeSlot", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), s.calls.Load())
	assert.Equal(t, StateClosed, breaker.State())
}

func TestPolicy_RequestTimeoutIsTransient(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(attempt int) (*http.Response, error) {
		if attempt == 1 {
			return s.respond(http.StatusRequestTimeout, ""), nil
		}
		return s.respond(http.StatusOK, ""), nil
	}

	resp, err := newTestPolicy(NewBreaker(3, time.Minute, nil)).Execute(context.Background(), "GetWeeklySlots", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), s.calls.Load())
}

func TestPolicy_OpenBreakerFailsFastWithoutCalling(t *testing.T) {
	clock := newFakeClock()
	breaker := NewBreaker(3, 30*time.Second, clock.Now)
	tripBreaker(t, breaker, 3)

	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusOK, ""), nil }

	resp, err := newTestPolicy(breaker).Execute(context.Background(), "GetWeeklyAvailability", s.call)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, exceptions.ErrKindBreakerOpen)
	assert.Equal(t, int32(0), s.calls.Load())

	clock.Advance(30 * time.Second)
	resp, err = newTestPolicy(breaker).Execute(context.Background(), "GetWeeklyAvailability", s.call)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), s.calls.Load())
	assert.Equal(t, StateClosed, breaker.State())
}

func TestPolicy_BreakerTripsMidSequence(t *testing.T) {
	breaker := NewBreaker(3, 30*time.Second, newFakeClock().Now)

	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusInternalServerError, ""), nil }

	policy := newTestPolicy(breaker)
	resp, err := policy.Execute(context.Background(), "GetWeeklySlots", s.call)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(3), s.calls.Load(), "fourth attempt must be rejected by the open breaker")
	assert.Equal(t, "open", policy.BreakerState())

	_, err = policy.Execute(context.Background(), "GetWeeklySlots", s.call)
	assert.ErrorIs(t, err, exceptions.ErrKindBreakerOpen)
	assert.Equal(t, int32(3), s.calls.Load())
}

func TestPolicy_CancellationStopsRetryWait(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return nil, errors.New("timeout") }

	policy := NewPolicy([]time.Duration{time.Hour}, NewBreaker(10, time.Minute, nil), nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	resp, err := policy.Execute(ctx, "GetWeeklySlots", s.call)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, int32(1), s.calls.Load())
}

func TestPolicy_OutboundLimiter(t *testing.T) {
	s := &scriptedCall{}
	s.outcome = func(int) (*http.Response, error) { return s.respond(http.StatusOK, ""), nil }

	policy := NewPolicy(nil, NewBreaker(3, time.Minute, nil), NewLimiter(1000), zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := policy.Execute(context.Background(), "GetWeeklySlots", s.call)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(5), s.calls.Load())
	assert.Nil(t, NewLimiter(0))
}

func TestIsTransientStatus(t *testing.T) {
	for _, code := range []int{408, 500, 502, 503, 504} {
		assert.True(t, IsTransientStatus(code), code)
	}
	for _, code := range []int{200, 201, 204, 400, 401, 404, 409, 429} {
		assert.False(t, IsTransientStatus(code), code)
	}
}
