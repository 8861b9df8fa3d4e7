package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/logging"
	"github.com/Spok95/admissions-site/internal/metrics"
	"github.com/Spok95/admissions-site/internal/observability"
	"github.com/Spok95/admissions-site/internal/submission"
)

const (
	msgEmailTaken       = "Test has already been recorded. Please use another email."
	msgUserNotFound     = "User not found. Please complete the form first."
	msgAlreadySubmitted = "Test has already been submitted for this user."
	msgInvalidPhone     = "Please enter a valid 10-digit mobile number starting with 6-9"
)

// writeServiceError maps domain errors to their status; anything else is a 500.
func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, submission.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: msgUserNotFound})
	case errors.Is(err, submission.ErrAlreadySubmitted):
		writeJSON(w, http.StatusConflict, errorResponse{Message: msgAlreadySubmitted})
	case errors.Is(err, submission.ErrInvalidPhone):
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{Message: msgInvalidPhone, Field: "phoneNumber"})
	default:
		a.writeInternal(w, r, err)
	}
}

func (a *API) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logging.ForContext(ctx, a.log).Error("request failed", zap.Error(err), zap.String("path", r.URL.Path))
	metrics.HandlerErrors.Inc()
	observability.CaptureCtxErr(ctx, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	var fe *fieldError
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{Message: fe.Message, Field: fe.Field})
		return
	}
	writeJSON(w, http.StatusBadRequest, validationErrorResponse{Message: err.Error()})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
