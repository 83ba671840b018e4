package contracts

import (
	"context"
	"time"

	"docplanner-gateway/internal/pkg/dto/requests"
	"docplanner-gateway/internal/pkg/dto/responses"
	"docplanner-gateway/internal/pkg/result"
)

type SlotUsecase interface {
	FetchWeeklyAvailability(ctx context.Context, identity *Identity, date time.Time) (result.Result[*responses.Availability], error)
	FetchWeeklyOpenSlots(ctx context.Context, identity *Identity, date time.Time) (result.Result[[]responses.TimeSlot], error)
	SubmitBooking(ctx context.Context, identity *Identity, booking *requests.Booking) (bool, error)
}
