package slots

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/app/services/shared/resilience"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/dto/requests"
	"docplanner-gateway/internal/pkg/dto/responses"
	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/result"
	"docplanner-gateway/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxUpstreamBodyBytes = 4 << 20

type slotUsecase struct {
	ClientFactory contracts.UpstreamClientFactory
	Policy        contracts.ResiliencePolicy
	Log           *zap.Logger
}

func NewSlotUsecase(clientFactory contracts.UpstreamClientFactory, policy contracts.ResiliencePolicy, logger *zap.Logger) contracts.SlotUsecase {
	return &slotUsecase{
		ClientFactory: clientFactory,
		Policy:        policy,
		Log:           logger,
	}
}

func (uc *slotUsecase) FetchWeeklyAvailability(ctx context.Context, identity *contracts.Identity, date time.Time) (result.Result[*responses.Availability], error) {
	availability, err := fetchWeekly[responses.Availability](ctx, uc, identity, constvars.UpstreamRouteWeeklyAvailability, date)
	if err != nil {
		return result.Empty[*responses.Availability](), err
	}
	value, ok := availability.Value()
	if !ok {
		return result.Empty[*responses.Availability](), nil
	}
	return result.Success(&value), nil
}

func (uc *slotUsecase) FetchWeeklyOpenSlots(ctx context.Context, identity *contracts.Identity, date time.Time) (result.Result[[]responses.TimeSlot], error) {
	return fetchWeekly[[]responses.TimeSlot](ctx, uc, identity, constvars.UpstreamRouteWeeklySlots, date)
}

// SubmitBooking reports whether the slot service accepted the booking.
// Any upstream status other than 2xx is a plain false.
func (uc *slotUsecase) SubmitBooking(ctx context.Context, identity *contracts.Identity, booking *requests.Booking) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	route := constvars.UpstreamRouteTakeSlot

	if booking == nil {
		return false, exceptions.ErrMissingBookingBody(nil)
	}

	uc.Log.Info("slotUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingUsernameKey, identity),
		zap.String(constvars.LoggingFacilityIDKey, booking.FacilityID.String()),
	)

	payload, err := json.Marshal(booking.ToTakeSlotPayload())
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	client := uc.ClientFactory.NewClient(identity)
	resp, err := uc.Policy.Execute(ctx, route, func(ctx context.Context) (*http.Response, error) {
		return client.PostJSON(ctx, route, payload)
	})
	if err != nil {
		return false, upstreamError(err, route)
	}
	defer closeBody(resp)

	if !isSuccessStatus(resp.StatusCode) {
		uc.Log.Warn("slotUsecase.SubmitBooking rejected by slot service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRouteKey, route),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return false, nil
	}

	uc.Log.Info("slotUsecase.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFacilityIDKey, booking.FacilityID.String()),
	)
	return true, nil
}

// fetchWeekly calls "<routeName>/<yyyyMMdd>" and decodes the JSON body into
// T. A non-2xx status, an empty body and a JSON null all yield Empty,
// except a transient status left over once retries are exhausted, which
// is UpstreamUnavailable.
func fetchWeekly[T any](ctx context.Context, uc *slotUsecase, identity *contracts.Identity, routeName string, date time.Time) (result.Result[T], error) {
	requestID := utils.GetRequestID(ctx)
	formattedDate := utils.FormatCompactDate(date)
	route := routeName + "/" + formattedDate

	uc.Log.Info("slotUsecase.fetchWeekly called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRouteKey, routeName),
		zap.String(constvars.LoggingDateKey, formattedDate),
		zap.String(constvars.LoggingWeekStartKey, utils.FormatCompactDate(utils.WeekStart(date))),
		zap.Stringer(constvars.LoggingUsernameKey, identity),
	)

	client := uc.ClientFactory.NewClient(identity)
	resp, err := uc.Policy.Execute(ctx, routeName, func(ctx context.Context) (*http.Response, error) {
		return client.Get(ctx, route)
	})
	if err != nil {
		return result.Empty[T](), upstreamError(err, routeName)
	}
	defer closeBody(resp)

	if resilience.IsTransientStatus(resp.StatusCode) {
		cause := fmt.Errorf("%w: status %d", exceptions.ErrKindTransientUpstreamFailure, resp.StatusCode)
		return result.Empty[T](), exceptions.ErrUpstreamUnavailable(cause, routeName)
	}

	if !isSuccessStatus(resp.StatusCode) {
		uc.Log.Warn("slotUsecase.fetchWeekly non-success status from slot service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRouteKey, routeName),
			zap.String(constvars.LoggingDateKey, formattedDate),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return result.Empty[T](), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
	if err != nil {
		return result.Empty[T](), exceptions.ErrUpstreamUnavailable(err, routeName)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		uc.Log.Warn("slotUsecase.fetchWeekly empty payload from slot service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRouteKey, routeName),
			zap.String(constvars.LoggingDateKey, formattedDate),
		)
		return result.Empty[T](), nil
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return result.Empty[T](), exceptions.ErrDecodeResponse(err, routeName)
	}
	return result.Success(decoded), nil
}

func upstreamError(err error, route string) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	if errors.Is(err, exceptions.ErrKindBreakerOpen) {
		return exceptions.ErrBreakerOpen(err, route)
	}
	return exceptions.ErrUpstreamUnavailable(err, route)
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
}
