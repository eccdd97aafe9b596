package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/store"
	"github.com/ariebrainware/patient-referral/util"
)

// RegistrationRequest is the intake payload for a new patient.
type RegistrationRequest struct {
	TCNumber       string
	FullName       string
	Gender         string
	Age            int
	PhoneNumber    string
	Address        string
	PastConditions []string
	Medications    []model.Medication
}

// Registration is the outcome of a successful intake.
type Registration struct {
	PatientID uint   `json:"patient_id"`
	TCNumber  string `json:"tc_number"`
}

// Register stores the patient's profile and merges the reported conditions and
// medications into their clinical record.
func (s *Service) Register(ctx context.Context, req RegistrationRequest) (Registration, error) {
	id, err := normalizeID(req.TCNumber)
	if err != nil {
		return Registration{}, err
	}
	if s.profiles == nil {
		return Registration{}, errors.New("patient intake is not configured")
	}
	meds, err := normalizeMedications(req.Medications)
	if err != nil {
		return Registration{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	profile := &model.PatientProfile{
		TCNumber:    id,
		FullName:    req.FullName,
		Gender:      req.Gender,
		Age:         req.Age,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Address:     req.Address,
	}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return Registration{}, fmt.Errorf("%w: patient %s is already registered", ErrConflict, id)
		}
		return Registration{}, fmt.Errorf("create profile: %w", err)
	}

	if err := s.mergeIntoRecord(ctx, id, req.PastConditions, meds); err != nil {
		// Drop the profile so a retry can register again.
		if rbErr := s.profiles.DeleteProfile(ctx, id); rbErr != nil {
			s.log.Error().Err(rbErr).Str("tc_number", id).Msg("failed to roll back patient profile")
		}
		return Registration{}, err
	}

	s.log.Info().Str("tc_number", id).Uint("patient_id", profile.ID).Msg("patient registered")
	return Registration{PatientID: profile.ID, TCNumber: id}, nil
}

func (s *Service) mergeIntoRecord(ctx context.Context, id string, conditions []string, meds []model.Medication) error {
	rec, err := s.loadOrCreate(ctx, id)
	if err != nil {
		return err
	}
	if !mergeIntake(rec, conditions, meds) {
		return nil
	}
	return s.save(ctx, rec)
}

func normalizeMedications(meds []model.Medication) ([]model.Medication, error) {
	out := make([]model.Medication, 0, len(meds))
	for _, m := range meds {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			return nil, fmt.Errorf("%w: medication name is required", ErrValidation)
		}
		switch m.Status {
		case "":
			m.Status = model.MedicationActive
		case model.MedicationActive, model.MedicationPast:
		default:
			return nil, fmt.Errorf("%w: medication status %q must be active or past", ErrValidation, m.Status)
		}
		out = append(out, m)
	}
	return out, nil
}

// mergeIntake adds conditions and medications not already on the record and reports whether anything changed.
func mergeIntake(rec *model.PatientRecord, conditions []string, meds []model.Medication) bool {
	changed := false
	for _, c := range conditions {
		c = strings.TrimSpace(c)
		if c == "" || util.Contains(c, rec.PastConditions) {
			continue
		}
		rec.PastConditions = append(rec.PastConditions, c)
		changed = true
	}
	for _, m := range meds {
		if hasMedication(rec.Medications, m.Name) {
			continue
		}
		rec.Medications = append(rec.Medications, m)
		changed = true
	}
	return changed
}

func hasMedication(meds []model.Medication, name string) bool {
	for _, m := range meds {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}
