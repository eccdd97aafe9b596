package model

// MedicationStatus tells whether a patient still takes a medication.
type MedicationStatus string

const (
	MedicationActive MedicationStatus = "active"
	MedicationPast   MedicationStatus = "past"
)

// Medication represents a medication on a patient's record
// @Description Medication information
type Medication struct {
	Name      string           `json:"name" example:"Beloc"`
	Status    MedicationStatus `json:"status" example:"active"`
	Dosage    string           `json:"dosage" example:"50mg"`
	Frequency string           `json:"frequency" example:"once daily"`
}

// Appointment represents an appointment booked for a patient
// @Description Appointment information
type Appointment struct {
	ID         int    `json:"id,omitempty" example:"1"`
	Department string `json:"department" example:"Neurology"`
	Date       string `json:"date" example:"2024-01-15 10:00"`
	Doctor     string `json:"doctor" example:"Dr. Sarah Johnson"`
	Diagnosis  string `json:"diagnosis,omitempty" example:"Migraine"`
}

// PatientRecord is the clinical record kept per patient identifier.
// NextAppointmentID only ever grows, so cancelled appointment ids are never handed out again.
// Version is bumped by the store on every successful write.
type PatientRecord struct {
	ID                string        `json:"tc_number"`
	PastConditions    []string      `json:"past_conditions"`
	Medications       []Medication  `json:"medications"`
	Appointments      []Appointment `json:"past_appointments"`
	NextAppointmentID int           `json:"next_appointment_id"`
	Version           int64         `json:"version"`
}

// NewPatientRecord returns an empty record for id.
func NewPatientRecord(id string) *PatientRecord {
	return &PatientRecord{
		ID:                id,
		PastConditions:    []string{},
		Medications:       []Medication{},
		Appointments:      []Appointment{},
		NextAppointmentID: 1,
	}
}

// Clone returns a deep copy so callers can mutate without touching a stored record.
func (p *PatientRecord) Clone() *PatientRecord {
	out := *p
	out.PastConditions = append([]string{}, p.PastConditions...)
	out.Medications = append([]Medication{}, p.Medications...)
	out.Appointments = append([]Appointment{}, p.Appointments...)
	return &out
}

// ActiveMedications returns the medications whose status is active, in record order.
func (p *PatientRecord) ActiveMedications() []Medication {
	var active []Medication
	for _, m := range p.Medications {
		if m.Status == MedicationActive {
			active = append(active, m)
		}
	}
	return active
}

// FindAppointment returns the position of the appointment with the given id, or -1.
func (p *PatientRecord) FindAppointment(id int) int {
	for i, a := range p.Appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// LastVisitTo returns the most recent appointment with the given doctor display name.
func (p *PatientRecord) LastVisitTo(doctor string) (Appointment, bool) {
	for i := len(p.Appointments) - 1; i >= 0; i-- {
		if p.Appointments[i].Doctor == doctor {
			return p.Appointments[i], true
		}
	}
	return Appointment{}, false
}
