package responses

import (
	"docplanner-gateway/internal/app/models"

	"github.com/google/uuid"
)

type Facility struct {
	FacilityID uuid.UUID `json:"facilityId"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
}

// TimeSlot is a half-open busy interval [Start, End).
type TimeSlot struct {
	Start models.DateTime `json:"start"`
	End   models.DateTime `json:"end"`
}

type WorkPeriod struct {
	StartHour      int        `json:"startHour"`
	EndHour        int        `json:"endHour"`
	LunchStartHour int        `json:"lunchStartHour"`
	LunchEndHour   int        `json:"lunchEndHour"`
	BusySlots      []TimeSlot `json:"busySlots"`
}

// WeekDay holds the working hours of one calendar day. A nil WorkPeriod
// means the facility is closed.
type WeekDay struct {
	WorkPeriod *WorkPeriod `json:"workPeriod"`
}

type Availability struct {
	Facility            Facility `json:"facility"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	Monday              *WeekDay `json:"monday"`
	Tuesday             *WeekDay `json:"tuesday"`
	Wednesday           *WeekDay `json:"wednesday"`
	Thursday            *WeekDay `json:"thursday"`
	Friday              *WeekDay `json:"friday"`
	Saturday            *WeekDay `json:"saturday"`
	Sunday              *WeekDay `json:"sunday"`
}

// OpenDays returns how many days of the week carry a work period.
func (a *Availability) OpenDays() int {
	open := 0
	for _, day := range []*WeekDay{a.Monday, a.Tuesday, a.Wednesday, a.Thursday, a.Friday, a.Saturday, a.Sunday} {
		if day != nil && day.WorkPeriod != nil {
			open++
		}
	}
	return open
}
