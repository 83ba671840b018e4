package constvars

// Slot service routes, relative to the configured base url.
const (
	UpstreamRouteWeeklyAvailability = "GetWeeklyAvailability"
	UpstreamRouteWeeklySlots        = "GetWeeklySlots"
	UpstreamRouteTakeSlot           = "TakeSlot"
)

// Date layouts shared by the inbound and upstream contracts.
const (
	LayoutCompactDate      = "20060102"
	LayoutBookingTimestamp = "2006-01-02 15:04:05"
	LayoutLocalDateTime    = "2006-01-02T15:04:05"
	LayoutLocalDateTimeOut = "2006-01-02T15:04:05.999999999"
)

const (
	UpstreamAuthModeForward = "forward"
	UpstreamAuthModeStatic  = "static"
)

const (
	BreakerStateClosed   = "closed"
	BreakerStateOpen     = "open"
	BreakerStateHalfOpen = "half-open"
)
