package model

import "strings"

const doctorPrefix = "Dr. "

// SymptomRule maps a symptom keyword to candidate departments and first-aid advice.
// SeverityCheck lists secondary keywords that turn a match into a warning.
type SymptomRule struct {
	Keyword          string   `json:"keyword" example:"headache"`
	Departments      []string `json:"departments" example:"Neurology,ENT"`
	InitialTreatment string   `json:"initial_treatment"`
	SeverityCheck    []string `json:"severity_check" example:"vomiting,fever"`
}

// Department is a medical specialty and its doctor roster.
// Doctors holds bare names; their position is the 1-based doctor index used when booking.
type Department struct {
	Name    string   `json:"name" example:"Neurology"`
	Doctors []string `json:"doctors" example:"Sarah Johnson,David Miller"`
}

// Doctor returns the bare name at the 1-based index.
func (d Department) Doctor(index int) (string, bool) {
	if index < 1 || index > len(d.Doctors) {
		return "", false
	}
	return d.Doctors[index-1], true
}

// DoctorDisplayName returns the name as shown to patients, with a single "Dr. " prefix.
func DoctorDisplayName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, doctorPrefix) {
		return name
	}
	return doctorPrefix + name
}

// DefaultDepartments returns the department directory the service starts with.
func DefaultDepartments() []Department {
	return []Department{
		{Name: "ENT", Doctors: []string{"John Smith", "Emily Brown", "Michael Davis"}},
		{Name: "Neurology", Doctors: []string{"Sarah Johnson", "David Miller", "Lisa Anderson"}},
		{Name: "Cardiology", Doctors: []string{"Michael Chen", "Emma Wilson", "Robert Taylor"}},
		{Name: "Ophthalmology", Doctors: []string{"Rachel Green", "Thomas Moore", "Jennifer Lee"}},
		{Name: "Internal Medicine", Doctors: []string{"James Wilson", "Jessica Martinez", "William Turner"}},
	}
}

// DefaultSymptomCatalog returns the symptom rules in matching order.
func DefaultSymptomCatalog() []SymptomRule {
	return []SymptomRule{
		{
			Keyword:          "headache",
			Departments:      []string{"Neurology", "ENT"},
			InitialTreatment: "Rest in a quiet, dark room. You may take over-the-counter pain medication. If pain is severe and persistent, please seek medical attention.",
			SeverityCheck:    []string{"vision problems", "vomiting", "fever"},
		},
		{
			Keyword:          "fever",
			Departments:      []string{"Internal Medicine"},
			InitialTreatment: "Stay hydrated and rest. Take fever reducer if temperature exceeds 101.3°F (38.5°C). Seek medical attention if fever persists for more than 3 days.",
			SeverityCheck:    []string{"difficulty breathing", "confusion"},
		},
		{
			Keyword:          "sore throat",
			Departments:      []string{"ENT"},
			InitialTreatment: "Gargle with warm salt water. Stay hydrated. You may use throat lozenges for temporary relief.",
			SeverityCheck:    []string{"difficulty swallowing", "high fever"},
		},
		{
			Keyword:          "stomach pain",
			Departments:      []string{"Internal Medicine"},
			InitialTreatment: "Eat bland foods. Avoid acidic and spicy foods. Consider taking antacids if needed.",
			SeverityCheck:    []string{"severe abdominal pain", "vomiting", "diarrhea"},
		},
	}
}

// SamplePatients returns the demo records loaded when SEED_SAMPLE_DATA is on.
func SamplePatients() []*PatientRecord {
	return []*PatientRecord{
		{
			ID:             "12345678901",
			PastConditions: []string{"Migraine", "Hypertension"},
			Medications: []Medication{
				{Name: "Beloc", Status: MedicationActive, Dosage: "50mg", Frequency: "once daily"},
				{Name: "Majezik", Status: MedicationPast, Dosage: "100mg", Frequency: "when needed"},
			},
			Appointments: []Appointment{
				{ID: 1, Department: "Neurology", Date: "2024-01-15", Doctor: "Dr. Sarah Johnson", Diagnosis: "Migraine"},
				{ID: 2, Department: "Cardiology", Date: "2024-02-20", Doctor: "Dr. Michael Chen", Diagnosis: "Hypertension"},
			},
			NextAppointmentID: 3,
		},
		{
			ID:             "98765432109",
			PastConditions: []string{"Diabetes", "Asthma"},
			Medications: []Medication{
				{Name: "Ventolin", Status: MedicationActive, Dosage: "100mcg", Frequency: "as needed"},
				{Name: "Glucophage", Status: MedicationActive, Dosage: "1000mg", Frequency: "twice daily"},
			},
			Appointments: []Appointment{
				{ID: 1, Department: "Pulmonology", Date: "2024-02-01", Doctor: "Dr. Emily White", Diagnosis: "Asthma"},
				{ID: 2, Department: "Internal Medicine", Date: "2024-03-01", Doctor: "Dr. James Wilson", Diagnosis: "Diabetes Control"},
			},
			NextAppointmentID: 3,
		},
	}
}
