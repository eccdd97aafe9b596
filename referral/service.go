// Package referral routes patients to departments from symptom text and manages
// their appointments on top of a store.PatientStore.
package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/store"
	"github.com/rs/zerolog"
)

// Service owns the patient store and the static catalogs. It is safe for concurrent use:
// every read-modify-write of a patient record runs under that patient's lock.
type Service struct {
	store        store.PatientStore
	profiles     store.ProfileRepository
	catalog      []model.SymptomRule
	departments  []model.Department
	availability Availability
	locks        *keyedMutex
	log          zerolog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithProfiles sets the repository used by Register.
func WithProfiles(p store.ProfileRepository) Option {
	return func(s *Service) { s.profiles = p }
}

// WithCatalog replaces the symptom rules.
func WithCatalog(rules []model.SymptomRule) Option {
	return func(s *Service) { s.catalog = rules }
}

// WithDepartments replaces the department directory.
func WithDepartments(depts []model.Department) Option {
	return func(s *Service) { s.departments = depts }
}

// WithAvailability replaces the doctor availability strategy.
func WithAvailability(a Availability) Option {
	return func(s *Service) { s.availability = a }
}

// WithLogger sets the logger used for service events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds a Service over st with the default catalog, directory and random availability.
func NewService(st store.PatientStore, opts ...Option) *Service {
	s := &Service{
		store:        st,
		catalog:      model.DefaultSymptomCatalog(),
		departments:  model.DefaultDepartments(),
		availability: NewRandomAvailability(0),
		locks:        newKeyedMutex(),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Departments returns the directory in configured order.
func (s *Service) Departments() []model.Department {
	out := make([]model.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func (s *Service) department(name string) (model.Department, bool) {
	for _, d := range s.departments {
		if d.Name == name {
			return d, true
		}
	}
	return model.Department{}, false
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingPatientID
	}
	return id, nil
}

// loadOrCreate returns the record for id, creating an empty one on first reference.
// Callers must hold the patient's lock.
func (s *Service) loadOrCreate(ctx context.Context, id string) (*model.PatientRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load patient %s: %w", id, err)
	}

	rec = model.NewPatientRecord(id)
	if err := s.store.Upsert(ctx, rec); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// Another writer created it first.
			return s.store.Get(ctx, id)
		}
		return nil, fmt.Errorf("create patient %s: %w", id, err)
	}
	s.log.Debug().Str("tc_number", id).Msg("patient record created")
	return rec, nil
}

// load returns the record for id without creating it.
func (s *Service) load(ctx context.Context, id string) (*model.PatientRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("load patient %s: %w", id, err)
	}
	return rec, nil
}

func (s *Service) save(ctx context.Context, rec *model.PatientRecord) error {
	if err := s.store.Upsert(ctx, rec); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return ErrConcurrentUpdate
		}
		return fmt.Errorf("save patient %s: %w", rec.ID, err)
	}
	return nil
}

// History returns the patient's record, creating an empty one for unknown identifiers.
func (s *Service) History(ctx context.Context, patientID string) (*model.PatientRecord, error) {
	id, err := normalizeID(patientID)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(id)
	defer unlock()
	return s.loadOrCreate(ctx, id)
}
