package referral

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ariebrainware/patient-referral/model"
)

// Availability decides whether a doctor can take a new appointment right now.
type Availability interface {
	IsAvailable(department, doctor string) bool
}

// AvailabilityFunc adapts a plain function to Availability.
type AvailabilityFunc func(department, doctor string) bool

func (f AvailabilityFunc) IsAvailable(department, doctor string) bool { return f(department, doctor) }

// RandomAvailability marks each doctor available with probability one half.
type RandomAvailability struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomAvailability seeds the generator; a zero seed uses the current time.
func NewRandomAvailability(seed int64) *RandomAvailability {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAvailability{rnd: rand.New(rand.NewSource(seed))}
}

func (r *RandomAvailability) IsAvailable(_, _ string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64() > 0.5
}

// RecommendRequest asks for available doctors in a department.
// PreferredDate is accepted for API compatibility and not used.
type RecommendRequest struct {
	PatientID     string
	Department    string
	PreferredDate string
}

// AvailableDoctor is a doctor offered to the patient.
// PastVisit holds the patient's most recent appointment with this doctor, if any.
type AvailableDoctor struct {
	Name           string             `json:"name" example:"Dr. Sarah Johnson"`
	Specialization string             `json:"specialization" example:"Neurology"`
	PastVisit      *model.Appointment `json:"past_visit,omitempty"`
}

// RecommendDoctors filters the department roster through the availability strategy.
// An empty result is valid.
func (s *Service) RecommendDoctors(ctx context.Context, req RecommendRequest) ([]AvailableDoctor, error) {
	dept, ok := s.department(req.Department)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidDepartment, req.Department)
	}
	id, err := normalizeID(req.PatientID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(id)
	rec, err := s.loadOrCreate(ctx, id)
	unlock()
	if err != nil {
		return nil, err
	}

	doctors := []AvailableDoctor{}
	for _, name := range dept.Doctors {
		if !s.availability.IsAvailable(dept.Name, name) {
			continue
		}
		display := model.DoctorDisplayName(name)
		doc := AvailableDoctor{Name: display, Specialization: dept.Name}
		if visit, ok := rec.LastVisitTo(display); ok {
			v := visit
			doc.PastVisit = &v
		}
		doctors = append(doctors, doc)
	}
	return doctors, nil
}
