package endpoint

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/patient-referral/middleware"
	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/util"
	"github.com/gin-gonic/gin"
)

// requireService returns the referral service or writes a 500 and returns nil.
func requireService(c *gin.Context) *referral.Service {
	svc := middleware.GetService(c)
	if svc == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Referral service not available",
			Err: fmt.Errorf("service is nil"),
		})
	}
	return svc
}

// respondServiceError maps referral error categories onto HTTP statuses.
func respondServiceError(c *gin.Context, msg string, err error) {
	params := util.APIErrorParams{Msg: msg, Err: err}
	switch {
	case errors.Is(err, referral.ErrValidation):
		util.CallUserError(c, params)
	case errors.Is(err, referral.ErrNotFound):
		util.CallErrorNotFound(c, params)
	case errors.Is(err, referral.ErrConflict):
		util.CallConflict(c, params)
	default:
		util.CallServerError(c, params)
	}
}

// errorMessage names the offending entity for 4xx responses.
func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, referral.ErrPatientNotFound):
		return "Patient not found"
	case errors.Is(err, referral.ErrAppointmentNotFound):
		return "Appointment not found"
	case errors.Is(err, referral.ErrInvalidDepartment):
		return "Invalid department"
	case errors.Is(err, referral.ErrInvalidDoctor):
		return "Invalid doctor"
	}
	return fallback
}

func bindError(c *gin.Context, err error) {
	util.CallUserError(c, util.APIErrorParams{
		Msg: "Invalid request body",
		Err: err,
	})
}

func audit(c *gin.Context, eventType util.AuditEventType, patientID, msg string, details map[string]interface{}) {
	util.LogAuditEvent(util.AuditEvent{
		EventType: eventType,
		PatientID: patientID,
		RequestID: middleware.GetRequestID(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   msg,
		Details:   details,
	})
}
