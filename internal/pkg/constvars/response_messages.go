package constvars

const (
	ResponseTimeSlotBooked = "TimeSlot successfully booked."
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)
