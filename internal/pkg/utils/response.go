package utils

import (
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/dto/responses"
	"docplanner-gateway/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildDataResponse writes data as the bare JSON body.
func BuildDataResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse never sends the dev message or the cause to the
// caller. Errors that are not a CustomError render as ErrServerProcess.
// Server errors are logged with their cause; client errors only at warn
// level.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, fields ...zap.Field) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		customErr = exceptions.ErrServerProcess(err)
	}
	code := customErr.StatusCode

	logFields := append([]zap.Field{}, fields...)
	for _, location := range customErr.Locations {
		logFields = append(logFields, zap.Any("location", map[string]interface{}{
			"file":          location.File,
			"line":          location.Line,
			"function_name": location.FunctionName,
		}))
	}
	if customErr.Err != nil {
		logFields = append(logFields, zap.Error(customErr.Err))
	}
	if code >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage, logFields...)
	} else {
		log.Warn(customErr.DevMessage, logFields...)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
	}
	json.NewEncoder(w).Encode(response)
}
