package endpoint

import (
	"net/http"

	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/util"
	"github.com/gin-gonic/gin"
)

type createAppointmentRequest struct {
	TCNumber        string `json:"tc_number" binding:"required" example:"12345678901"`
	Department      string `json:"department" binding:"required" example:"Neurology"`
	DoctorID        int    `json:"doctor_id" binding:"required" example:"1"`
	AppointmentDate string `json:"appointment_date" binding:"required" example:"2024-05-01 10:00"`
}

type createAppointmentResponse struct {
	Success         bool   `json:"success" example:"true"`
	AppointmentID   int    `json:"appointment_id" example:"3"`
	Department      string `json:"department" example:"Neurology"`
	AppointmentDate string `json:"appointment_date" example:"2024-05-01 10:00"`
	DoctorName      string `json:"doctor_name" example:"Dr. Sarah Johnson"`
}

type listAppointmentsResponse struct {
	Appointments []model.Appointment `json:"appointments"`
}

type updateAppointmentRequest struct {
	TCNumber      string `json:"tc_number" binding:"required" example:"12345678901"`
	AppointmentID int    `json:"appointment_id" example:"1"`
	NewDate       string `json:"new_date" binding:"required" example:"2024-05-02 14:00"`
}

type cancelAppointmentRequest struct {
	TCNumber      string `json:"tc_number" binding:"required" example:"12345678901"`
	AppointmentID int    `json:"appointment_id" example:"1"`
}

// CreateAppointment godoc
// @Summary      Book an appointment
// @Description  Book the doctor_id-th (1-based) doctor of a department. Unknown patients get a new record.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body createAppointmentRequest true "Appointment details"
// @Success      200 {object} createAppointmentResponse "Appointment created"
// @Failure      400 {object} util.APIResponse "Invalid department or doctor"
// @Failure      409 {object} util.APIResponse "Concurrent update"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/appointment/create [post]
func CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	appt, err := svc.CreateAppointment(c.Request.Context(), referral.AppointmentRequest{
		PatientID:   req.TCNumber,
		Department:  req.Department,
		DoctorIndex: req.DoctorID,
		Date:        req.AppointmentDate,
	})
	if err != nil {
		respondServiceError(c, errorMessage(err, "Failed to create appointment"), err)
		return
	}

	audit(c, util.EventAppointmentCreated, req.TCNumber, "Appointment created", map[string]interface{}{
		"appointment_id": appt.ID,
		"department":     appt.Department,
		"doctor":         appt.Doctor,
	})
	c.JSON(http.StatusOK, createAppointmentResponse{
		Success:         true,
		AppointmentID:   appt.ID,
		Department:      appt.Department,
		AppointmentDate: appt.Date,
		DoctorName:      appt.Doctor,
	})
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Return every appointment on the patient's record
// @Tags         Appointment
// @Produce      json
// @Param        tc_number path string true "Patient identifier"
// @Success      200 {object} listAppointmentsResponse "Appointments"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patient/{tc_number}/appointments [get]
func ListAppointments(c *gin.Context) {
	svc := requireService(c)
	if svc == nil {
		return
	}

	appts, err := svc.ListAppointments(c.Request.Context(), c.Param("tc_number"))
	if err != nil {
		respondServiceError(c, errorMessage(err, "Failed to retrieve appointments"), err)
		return
	}

	c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: appts})
}

// UpdateAppointment godoc
// @Summary      Reschedule an appointment
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body updateAppointmentRequest true "New date"
// @Success      200 {object} util.MessageResponse "Appointment updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient or appointment not found"
// @Failure      409 {object} util.APIResponse "Concurrent update"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/appointment/update [put]
func UpdateAppointment(c *gin.Context) {
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	if err := svc.UpdateAppointment(c.Request.Context(), req.TCNumber, req.AppointmentID, req.NewDate); err != nil {
		respondServiceError(c, errorMessage(err, "Failed to update appointment"), err)
		return
	}

	audit(c, util.EventAppointmentUpdated, req.TCNumber, "Appointment updated", map[string]interface{}{
		"appointment_id": req.AppointmentID,
		"new_date":       req.NewDate,
	})
	util.CallSuccessMessage(c, "Appointment updated successfully")
}

// CancelAppointment godoc
// @Summary      Cancel an appointment
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body cancelAppointmentRequest true "Appointment to cancel"
// @Success      200 {object} util.MessageResponse "Appointment cancelled"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient or appointment not found"
// @Failure      409 {object} util.APIResponse "Concurrent update"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/appointment/cancel [delete]
func CancelAppointment(c *gin.Context) {
	var req cancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	if err := svc.CancelAppointment(c.Request.Context(), req.TCNumber, req.AppointmentID); err != nil {
		respondServiceError(c, errorMessage(err, "Failed to cancel appointment"), err)
		return
	}

	audit(c, util.EventAppointmentCancelled, req.TCNumber, "Appointment cancelled", map[string]interface{}{
		"appointment_id": req.AppointmentID,
	})
	util.CallSuccessMessage(c, "Appointment cancelled successfully")
}
