package util

import (
	"encoding/json"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ariebrainware/patient-referral/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEventType represents different types of audit events
type AuditEventType string

const (
	EventPatientRegistered    AuditEventType = "PATIENT_REGISTERED"
	EventDiagnosisRequested   AuditEventType = "DIAGNOSIS_REQUESTED"
	EventAppointmentCreated   AuditEventType = "APPOINTMENT_CREATED"
	EventAppointmentUpdated   AuditEventType = "APPOINTMENT_UPDATED"
	EventAppointmentCancelled AuditEventType = "APPOINTMENT_CANCELLED"
	EventRateLimitExceeded    AuditEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity   AuditEventType = "SUSPICIOUS_ACTIVITY"
)

// AuditEvent represents an audit event to be logged
type AuditEvent struct {
	EventType AuditEventType
	PatientID string
	RequestID string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	auditMu sync.RWMutex
	auditDB *gorm.DB
)

// SetAuditLoggerDB sets a gorm DB instance used to persist audit events.
// Call this during application startup after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditMu.Lock()
	defer auditMu.Unlock()
	auditDB = db
}

const maxLogValueRunes = 200

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if utf8.RuneCountInString(value) > maxLogValueRunes {
		value = string([]rune(value)[:maxLogValueRunes]) + "..."
	}
	return value
}

// LogAuditEvent logs an audit event and persists it when a DB is configured.
// Persistence is best-effort and never fails the caller.
func LogAuditEvent(event AuditEvent) {
	logger := Logger()
	logger.Info().
		Str("event", sanitizeLogValue(string(event.EventType))).
		Str("tc_number", sanitizeLogValue(event.PatientID)).
		Str("request_id", sanitizeLogValue(event.RequestID)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Int("details_count", len(event.Details)).
		Msg(sanitizeLogValue(event.Message))

	auditMu.RLock()
	db := auditDB
	auditMu.RUnlock()
	if db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.AuditLog{
		EventType: string(event.EventType),
		PatientID: sanitizeLogValue(event.PatientID),
		RequestID: sanitizeLogValue(event.RequestID),
		IP:        sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := db.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Msg("failed to persist audit event")
	}
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogAuditEvent(AuditEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   "Rate limit exceeded for endpoint: " + endpoint,
	})
}
