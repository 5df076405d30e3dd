package handlers

import (
	"errors"
	"net/http"

	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps the scheduling error taxonomy onto HTTP
// statuses. Upstream failures are retryable 503s; client-caused errors are
// surfaced verbatim so the caller can correct the request.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case scheduling.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, scheduling.ErrDoctorNotFound),
		errors.Is(err, scheduling.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, scheduling.ErrSelfBooking),
		errors.Is(err, scheduling.ErrSlotTaken),
		errors.Is(err, scheduling.ErrIllegalTransition):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, scheduling.ErrUpstreamTimeout),
		errors.Is(err, scheduling.ErrUpstreamUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "service temporarily unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
