package requests

import (
	"docplanner-gateway/internal/app/models"
	"docplanner-gateway/internal/pkg/utils"

	"github.com/google/uuid"
)

type Patient struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Booking is the slot reservation accepted on the public surface.
type Booking struct {
	FacilityID uuid.UUID       `json:"facilityId"`
	Start      models.DateTime `json:"start"`
	End        models.DateTime `json:"end"`
	Patient    *Patient        `json:"patient,omitempty"`
	Comments   *string         `json:"comments,omitempty"`
}

// TakeSlotPayload is the body the slot service expects on TakeSlot.
type TakeSlotPayload struct {
	FacilityID uuid.UUID `json:"facilityId"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Patient    *Patient  `json:"patient"`
	Comments   *string   `json:"comments"`
}

func (b *Booking) ToTakeSlotPayload() TakeSlotPayload {
	return TakeSlotPayload{
		FacilityID: b.FacilityID,
		Start:      utils.FormatBookingTimestamp(b.Start.WallClock()),
		End:        utils.FormatBookingTimestamp(b.End.WallClock()),
		Patient:    b.Patient,
		Comments:   b.Comments,
	}
}
