package endpoint

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the patient, appointment and department APIs.
// registerGuards run in front of the registration endpoint only.
func RegisterRoutes(r gin.IRouter, registerGuards ...gin.HandlerFunc) {
	api := r.Group("/api")

	patient := api.Group("/patient")
	registerChain := append(append([]gin.HandlerFunc{}, registerGuards...), RegisterPatient)
	patient.POST("/register", registerChain...)
	patient.GET("/:tc_number/history", GetPatientHistory)
	patient.GET("/:tc_number/appointments", ListAppointments)
	patient.POST("/diagnose", DiagnosePatient)
	patient.POST("/recommend", RecommendDoctors)

	appointment := api.Group("/appointment")
	appointment.POST("/create", CreateAppointment)
	appointment.PUT("/update", UpdateAppointment)
	appointment.DELETE("/cancel", CancelAppointment)

	api.GET("/departments", ListDepartments)
}
