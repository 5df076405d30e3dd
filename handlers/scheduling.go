package handlers

import (
	"net/http"
	"strconv"

	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// SchedulingHandler serves availability queries and appointment booking.
type SchedulingHandler struct {
	Svc scheduling.SchedulingService
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// GetAvailableWorkingHoursHandler returns the open slots for a doctor.
// Query params: days (default from config), date (pins a single "YYYY-MM-DD").
func (h *SchedulingHandler) GetAvailableWorkingHoursHandler(c *gin.Context) {
	doctorID := c.Param("id")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "days must be a positive integer")
			return
		}
		days = parsed
	}

	report, err := h.Svc.GetAvailableWorkingHours(c.Request.Context(), doctorID, days, c.Query("date"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// BookAppointmentHandler books a slot for a patient.
func (h *SchedulingHandler) BookAppointmentHandler(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler cancels an appointment on behalf of its patient.
func (h *SchedulingHandler) CancelAppointmentHandler(c *gin.Context) {
	var input struct {
		PatientID string `json:"patientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.CancelAppointment(c.Request.Context(), c.Param("id"), input.PatientID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ConfirmAppointmentHandler confirms a pending appointment.
func (h *SchedulingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.ConfirmAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteAppointmentHandler marks an appointment as done.
func (h *SchedulingHandler) CompleteAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.CompleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListDoctorAppointmentsHandler lists a doctor's appointments.
func (h *SchedulingHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListDoctorAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "total": len(appts)})
}

// ListPatientAppointmentsHandler lists a patient's appointments.
func (h *SchedulingHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListPatientAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "total": len(appts)})
}
