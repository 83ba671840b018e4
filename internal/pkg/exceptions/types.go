package exceptions

import (
	"docplanner-gateway/internal/pkg/constvars"
	"errors"
	"fmt"
)

// Kinds. Every CustomError built below wraps exactly one of these.
var (
	ErrKindMalformedHeader          = errors.New("malformed authorization header")
	ErrKindInvalidCredentials       = errors.New("invalid credentials")
	ErrKindInvalidDateFormat        = errors.New("invalid date format")
	ErrKindMissingBookingBody       = errors.New("missing booking body")
	ErrKindBookingRejected          = errors.New("booking rejected")
	ErrKindNoDataAvailable          = errors.New("no data available")
	ErrKindTransientUpstreamFailure = errors.New("transient upstream failure")
	ErrKindUpstreamUnavailable      = errors.New("upstream unavailable")
	ErrKindDecodeFailure            = errors.New("decode failure")
	ErrKindBreakerOpen              = errors.New("circuit breaker open")
)

func withKind(kind, err error) error {
	if err == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, err)
}

var (
	// Authentication
	ErrMalformedHeader = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindMalformedHeader, err), constvars.StatusUnauthorized, constvars.ErrClientInvalidAuthorizationHeader, devMessage)
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(withKind(ErrKindInvalidCredentials, err), constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}

	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}

	// Input validation
	ErrInvalidDateFormat = func(err error, date string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindInvalidDateFormat, err), constvars.StatusBadRequest, constvars.ErrClientInvalidDateFormat, fmt.Sprintf(constvars.ErrDevInvalidDateFormat, date))
	}
	ErrMissingBookingBody = func(err error) *CustomError {
		return BuildNewCustomError(withKind(ErrKindMissingBookingBody, err), constvars.StatusBadRequest, constvars.ErrClientBookingDataRequired, constvars.ErrDevBookingBodyMissing)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Domain outcomes
	ErrBookingRejected = func(err error) *CustomError {
		return BuildNewCustomError(withKind(ErrKindBookingRejected, err), constvars.StatusBadRequest, constvars.ErrClientFailedToBookTimeSlot, constvars.ErrDevUpstreamRejectedBooking)
	}
	ErrNoSlotsAvailable = func(err error, route string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindNoDataAvailable, err), constvars.StatusNotFound, constvars.ErrClientNoSlotsAvailable, fmt.Sprintf(constvars.ErrDevUpstreamNoData, route))
	}

	// Upstream
	ErrUpstreamUnavailable = func(err error, route string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindUpstreamUnavailable, err), constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpstreamUnavailable, route))
	}
	ErrDecodeResponse = func(err error, route string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindDecodeFailure, err), constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpstreamDecode, route))
	}
	ErrBreakerOpen = func(err error, route string) *CustomError {
		return BuildNewCustomError(withKind(ErrKindBreakerOpen, err), constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpstreamBreakerOpen, route))
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
)
