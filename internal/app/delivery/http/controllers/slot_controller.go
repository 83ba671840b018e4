package controllers

import (
	"bytes"
	"io"
	"net/http"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/app/delivery/http/middlewares"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/dto/requests"
	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBookingBodyBytes = 1 << 20

type SlotController struct {
	Usecase contracts.SlotUsecase
	Log     *zap.Logger
}

func NewSlotController(usecase contracts.SlotUsecase, log *zap.Logger) *SlotController {
	return &SlotController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetWeeklyAvailability returns the facility schedule for the week that
// contains the yyyyMMdd date in the path. No schedule is a 200 with a
// null body.
func (c *SlotController) GetWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	rawDate := chi.URLParam(r, "date")
	logFields := c.requestFields(r, zap.String(constvars.LoggingDateKey, rawDate))

	date, ok := utils.ParseCompactDate(rawDate)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidDateFormat(nil, rawDate), logFields...)
		return
	}

	availability, err := c.Usecase.FetchWeeklyAvailability(r.Context(), middlewares.IdentityFromContext(r.Context()), date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err, logFields...)
		return
	}

	value, ok := availability.Value()
	if !ok {
		c.Log.Info("Weekly availability empty", logFields...)
		utils.BuildDataResponse(w, constvars.StatusOK, nil)
		return
	}

	c.Log.Info("Weekly availability retrieved", logFields...)
	utils.BuildDataResponse(w, constvars.StatusOK, value)
}

// GetWeeklySlots returns the busy slots of the week that contains the
// yyyyMMdd date in the path, or 404 when there are none.
func (c *SlotController) GetWeeklySlots(w http.ResponseWriter, r *http.Request) {
	rawDate := chi.URLParam(r, "date")
	logFields := c.requestFields(r, zap.String(constvars.LoggingDateKey, rawDate))

	date, ok := utils.ParseCompactDate(rawDate)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidDateFormat(nil, rawDate), logFields...)
		return
	}

	slots, err := c.Usecase.FetchWeeklyOpenSlots(r.Context(), middlewares.IdentityFromContext(r.Context()), date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err, logFields...)
		return
	}

	value, ok := slots.Value()
	if !ok || len(value) == 0 {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrNoSlotsAvailable(nil, constvars.UpstreamRouteWeeklySlots), logFields...)
		return
	}

	c.Log.Info("Weekly slots retrieved", append(logFields, zap.Int("count", len(value)))...)
	utils.BuildDataResponse(w, constvars.StatusOK, value)
}

// TakeSlot books the slot described by the request body.
func (c *SlotController) TakeSlot(w http.ResponseWriter, r *http.Request) {
	logFields := c.requestFields(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBookingBodyBytes))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err), logFields...)
		return
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingBookingBody(nil), logFields...)
		return
	}

	booking := new(requests.Booking)
	if err := json.Unmarshal(body, booking); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err), logFields...)
		return
	}
	logFields = append(logFields, zap.String(constvars.LoggingFacilityIDKey, booking.FacilityID.String()))

	booked, err := c.Usecase.SubmitBooking(r.Context(), middlewares.IdentityFromContext(r.Context()), booking)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err, append(logFields, zap.ByteString(constvars.LoggingBookingKey, body))...)
		return
	}
	if !booked {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrBookingRejected(nil), logFields...)
		return
	}

	c.Log.Info("TimeSlot successfully booked", logFields...)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseTimeSlotBooked)
}

func (c *SlotController) requestFields(r *http.Request, fields ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Stringer(constvars.LoggingUsernameKey, middlewares.IdentityFromContext(r.Context())),
	}, fields...)
}
