package endpoint

import (
	"errors"
	"net/http"

	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/util"
	"github.com/gin-gonic/gin"
)

type registerPatientRequest struct {
	TCNumber       string             `json:"tc_number" binding:"required" example:"12345678901"`
	FullName       string             `json:"full_name" binding:"required" example:"John Doe"`
	Gender         string             `json:"gender" example:"Male"`
	Age            int                `json:"age" example:"30"`
	PhoneNumber    string             `json:"phone_number" example:"081234567890"`
	Address        string             `json:"address" example:"123 Main St"`
	PastConditions []string           `json:"past_conditions" example:"Migraine"`
	Medications    []model.Medication `json:"medications"`
}

type registerPatientResponse struct {
	Message   string `json:"message" example:"Patient registered successfully"`
	PatientID uint   `json:"patient_id" example:"1"`
}

type historyResponse struct {
	PastConditions   []string            `json:"past_conditions"`
	Medications      []model.Medication  `json:"medications"`
	PastAppointments []model.Appointment `json:"past_appointments"`
}

type diagnoseRequest struct {
	TCNumber string `json:"tc_number" binding:"required" example:"12345678901"`
	Symptoms string `json:"symptoms" example:"I have a headache and vomiting"`
	Severity string `json:"severity" example:"moderate"`
	Duration string `json:"duration" example:"2 days"`
}

type recommendRequest struct {
	TCNumber      string `json:"tc_number" binding:"required" example:"12345678901"`
	Department    string `json:"department" binding:"required" example:"Neurology"`
	PreferredDate string `json:"preferred_date" example:"2024-05-01"`
}

type recommendResponse struct {
	AvailableDoctors []referral.AvailableDoctor `json:"available_doctors"`
}

// RegisterPatient godoc
// @Summary      Register a patient
// @Description  Store the patient's profile and merge reported conditions and medications into their record
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body registerPatientRequest true "Patient details"
// @Success      200 {object} registerPatientResponse "Patient registered"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      409 {object} util.APIResponse "Patient already registered"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patient/register [post]
func RegisterPatient(c *gin.Context) {
	var req registerPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	reg, err := svc.Register(c.Request.Context(), referral.RegistrationRequest{
		TCNumber:       req.TCNumber,
		FullName:       util.NormalizeName(req.FullName),
		Gender:         req.Gender,
		Age:            req.Age,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		PastConditions: req.PastConditions,
		Medications:    req.Medications,
	})
	if err != nil {
		msg := "Failed to register patient"
		if errors.Is(err, referral.ErrConflict) {
			msg = "Patient already registered"
		}
		respondServiceError(c, msg, err)
		return
	}

	audit(c, util.EventPatientRegistered, reg.TCNumber, "Patient registered", map[string]interface{}{
		"patient_id": reg.PatientID,
	})
	c.JSON(http.StatusOK, registerPatientResponse{
		Message:   "Patient registered successfully",
		PatientID: reg.PatientID,
	})
}

// GetPatientHistory godoc
// @Summary      Get patient history
// @Description  Return past conditions, medications and appointments. Unknown patients get an empty record.
// @Tags         Patient
// @Produce      json
// @Param        tc_number path string true "Patient identifier"
// @Success      200 {object} historyResponse "Patient history"
// @Failure      400 {object} util.APIResponse "Invalid patient identifier"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patient/{tc_number}/history [get]
func GetPatientHistory(c *gin.Context) {
	svc := requireService(c)
	if svc == nil {
		return
	}

	rec, err := svc.History(c.Request.Context(), c.Param("tc_number"))
	if err != nil {
		respondServiceError(c, "Failed to retrieve patient history", err)
		return
	}

	c.JSON(http.StatusOK, historyResponse{
		PastConditions:   rec.PastConditions,
		Medications:      rec.Medications,
		PastAppointments: rec.Appointments,
	})
}

// DiagnosePatient godoc
// @Summary      Pre-diagnose symptoms
// @Description  Match free-text symptoms against the symptom catalog and suggest departments, first aid and warnings
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body diagnoseRequest true "Symptoms"
// @Success      200 {object} referral.Diagnosis "Diagnosis"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patient/diagnose [post]
func DiagnosePatient(c *gin.Context) {
	var req diagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	result, err := svc.Diagnose(c.Request.Context(), referral.DiagnosisRequest{
		PatientID: req.TCNumber,
		Symptoms:  req.Symptoms,
		Severity:  req.Severity,
		Duration:  req.Duration,
	})
	if err != nil {
		respondServiceError(c, "Failed to diagnose symptoms", err)
		return
	}

	audit(c, util.EventDiagnosisRequested, req.TCNumber, "Diagnosis requested", map[string]interface{}{
		"departments": result.RecommendedDepartments,
		"warnings":    len(result.Warnings),
	})
	c.JSON(http.StatusOK, result)
}

// RecommendDoctors godoc
// @Summary      Recommend doctors
// @Description  List the doctors of a department who are currently available, with the patient's last visit to each
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body recommendRequest true "Department"
// @Success      200 {object} recommendResponse "Available doctors"
// @Failure      400 {object} util.APIResponse "Invalid department"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/patient/recommend [post]
func RecommendDoctors(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	svc := requireService(c)
	if svc == nil {
		return
	}

	doctors, err := svc.RecommendDoctors(c.Request.Context(), referral.RecommendRequest{
		PatientID:     req.TCNumber,
		Department:    req.Department,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		respondServiceError(c, errorMessage(err, "Failed to recommend doctors"), err)
		return
	}

	c.JSON(http.StatusOK, recommendResponse{AvailableDoctors: doctors})
}
