package handlers

import (
	"errors"
	"net/http"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves doctor profile endpoints.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// GetDoctorByIDHandler returns a doctor profile.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	d, err := h.Svc.GetDoctorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateClinicInfoHandler applies a clinic-info update, merging any incoming
// working-hour rules into the doctor's existing set.
func (h *DoctorHandler) UpdateClinicInfoHandler(c *gin.Context) {
	var update models.ClinicInfoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	d, err := h.Svc.UpdateClinicInfo(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update clinic info", err.Error())
		return
	}
	c.JSON(http.StatusOK, d)
}
