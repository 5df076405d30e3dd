package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, sched *handlers.SchedulingHandler, doctor *handlers.DoctorHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, sched, doctor)
	RegisterAppointmentRoutes(r, sched)
	RegisterHealthRoute(r)
}

// RegisterDoctorRoutes registers doctor profile and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, sched *handlers.SchedulingHandler, doctor *handlers.DoctorHandler) {
	api := r.Group("/api/doctors")
	{
		api.GET("/:id", doctor.GetDoctorByIDHandler)
		api.PUT("/:id/clinic-info", doctor.UpdateClinicInfoHandler)
		api.GET("/:id/available-hours", sched.GetAvailableWorkingHoursHandler)
		api.GET("/:id/appointments", sched.ListDoctorAppointmentsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, sched *handlers.SchedulingHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", sched.BookAppointmentHandler)
		api.PATCH("/:id/cancel", sched.CancelAppointmentHandler)
		api.PATCH("/:id/confirm", sched.ConfirmAppointmentHandler)
		api.PATCH("/:id/complete", sched.CompleteAppointmentHandler)
	}

	patients := r.Group("/api/patients")
	{
		patients.GET("/:id/appointments", sched.ListPatientAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
