package constvars

// Error messages for clients
const (
	ErrClientInvalidDateFormat             = "Invalid date format. Please use yyyyMMdd format."
	ErrClientBookingDataRequired           = "TimeSlot data is required."
	ErrClientFailedToBookTimeSlot          = "Failed to book the timeSlot."
	ErrClientNoSlotsAvailable              = "No slots available."
	ErrClientSomethingWrongWithApplication = "An error occurred while processing your request."
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password."
	ErrClientInvalidAuthorizationHeader    = "Invalid Authorization header."
	ErrClientCannotProcessRequest          = "Failed to process your request."
	ErrClientTooManyRequests               = "Too many requests, please slow down."
)

// Error messages for developers
const (
	ErrDevAuthHeaderMissing        = "authorization header missing"
	ErrDevAuthHeaderInvalidScheme  = "authorization header scheme is not Basic"
	ErrDevAuthHeaderInvalidPayload = "authorization header payload is not valid base64 username:password"
	ErrDevInvalidCredentials       = "credential pair not found in credential store"
	ErrDevInvalidDateFormat        = "date %q is not in yyyyMMdd format"
	ErrDevBookingBodyMissing       = "booking request body is missing"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevUpstreamUnavailable      = "slot service unreachable after retries on %s"
	ErrDevUpstreamDecode           = "failed to decode slot service response from %s"
	ErrDevUpstreamBreakerOpen      = "circuit breaker open, call to %s rejected"
	ErrDevUpstreamRejectedBooking  = "slot service rejected booking"
	ErrDevUpstreamNoData           = "slot service returned no data for %s"
	ErrDevServerProcess            = "failed to process request"
	ErrDevServerPanic              = "recovered from panic"
	ErrDevTooManyRequests          = "inbound rate limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
