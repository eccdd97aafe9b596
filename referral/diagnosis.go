package referral

import (
	"context"
	"fmt"
	"strings"

	"github.com/ariebrainware/patient-referral/model"
)

const noMatchWarning = "No specific match found for your symptoms. Please select the most appropriate department."

// DiagnosisRequest is a free-text symptom report.
// Severity and Duration are carried for API compatibility; matching does not read them.
type DiagnosisRequest struct {
	PatientID string
	Symptoms  string
	Severity  string
	Duration  string
}

// Diagnosis is the advice produced for a symptom report.
type Diagnosis struct {
	RecommendedDepartments []string `json:"recommended_departments"`
	InitialTreatment       []string `json:"initial_treatment"`
	Warnings               []string `json:"warnings"`
	PatientSpecificNotes   []string `json:"patient_specific_notes"`
}

// Diagnose matches the symptom text against the catalog by substring, so "feverish" matches "fever".
// When nothing matches, every department is recommended with a single fallback warning.
func (s *Service) Diagnose(ctx context.Context, req DiagnosisRequest) (Diagnosis, error) {
	id, err := normalizeID(req.PatientID)
	if err != nil {
		return Diagnosis{}, err
	}

	unlock := s.locks.Lock(id)
	rec, err := s.loadOrCreate(ctx, id)
	unlock()
	if err != nil {
		return Diagnosis{}, err
	}

	result := Diagnosis{
		RecommendedDepartments: []string{},
		InitialTreatment:       []string{},
		Warnings:               []string{},
		PatientSpecificNotes:   []string{},
	}

	text := strings.ToLower(req.Symptoms)
	seen := make(map[string]struct{})
	for _, rule := range s.catalog {
		keyword := strings.ToLower(rule.Keyword)
		if !strings.Contains(text, keyword) {
			continue
		}
		for _, dept := range rule.Departments {
			if _, ok := seen[dept]; ok {
				continue
			}
			seen[dept] = struct{}{}
			result.RecommendedDepartments = append(result.RecommendedDepartments, dept)
		}
		result.InitialTreatment = append(result.InitialTreatment, rule.InitialTreatment)
		for _, severity := range rule.SeverityCheck {
			if strings.Contains(text, strings.ToLower(severity)) {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"The combination of '%s' with '%s' may be serious. Please seek medical attention promptly.",
					rule.Keyword, severity))
			}
		}
	}

	result.PatientSpecificNotes = patientNotes(rec)

	if len(result.RecommendedDepartments) == 0 {
		for _, d := range s.departments {
			result.RecommendedDepartments = append(result.RecommendedDepartments, d.Name)
		}
		result.Warnings = append(result.Warnings, noMatchWarning)
	}

	s.log.Debug().
		Str("tc_number", id).
		Strs("departments", result.RecommendedDepartments).
		Int("warnings", len(result.Warnings)).
		Msg("diagnosis computed")
	return result, nil
}

func patientNotes(rec *model.PatientRecord) []string {
	notes := []string{}
	if active := rec.ActiveMedications(); len(active) > 0 {
		meds := make([]string, 0, len(active))
		for _, m := range active {
			meds = append(meds, fmt.Sprintf("%s (%s)", m.Name, m.Dosage))
		}
		notes = append(notes, "Please inform the doctor about your current medications: "+strings.Join(meds, ", "))
	}
	if len(rec.PastConditions) > 0 {
		notes = append(notes, "Please inform the doctor about your chronic conditions: "+strings.Join(rec.PastConditions, ", "))
	}
	return notes
}
