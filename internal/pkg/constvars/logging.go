package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUsernameKey   = "username"
	LoggingDateKey       = "date"
	LoggingWeekStartKey  = "week_start"
	LoggingRouteKey      = "route"
	LoggingAttemptKey    = "attempt"
	LoggingFacilityIDKey = "facility_id"
	LoggingBookingKey    = "booking"
	LoggingBreakerKey    = "breaker_state"
)
