package referral

import (
	"context"
	"fmt"

	"github.com/ariebrainware/patient-referral/model"
)

// AppointmentRequest books the DoctorIndex-th (1-based) doctor of Department.
type AppointmentRequest struct {
	PatientID   string
	Department  string
	DoctorIndex int
	Date        string
}

// CreateAppointment appends a new appointment to the patient's record, creating the
// record if needed. The id comes from the record's counter and is never reused.
func (s *Service) CreateAppointment(ctx context.Context, req AppointmentRequest) (model.Appointment, error) {
	dept, ok := s.department(req.Department)
	if !ok {
		return model.Appointment{}, fmt.Errorf("%w %q", ErrInvalidDepartment, req.Department)
	}
	doctor, ok := dept.Doctor(req.DoctorIndex)
	if !ok {
		return model.Appointment{}, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidDoctor, req.DoctorIndex, len(dept.Doctors))
	}
	id, err := normalizeID(req.PatientID)
	if err != nil {
		return model.Appointment{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	rec, err := s.loadOrCreate(ctx, id)
	if err != nil {
		return model.Appointment{}, err
	}
	if rec.NextAppointmentID < 1 {
		rec.NextAppointmentID = 1
	}

	appt := model.Appointment{
		ID:         rec.NextAppointmentID,
		Department: dept.Name,
		Date:       req.Date,
		Doctor:     model.DoctorDisplayName(doctor),
	}
	rec.Appointments = append(rec.Appointments, appt)
	rec.NextAppointmentID++

	if err := s.save(ctx, rec); err != nil {
		return model.Appointment{}, err
	}
	s.log.Info().Str("tc_number", id).Int("appointment_id", appt.ID).Str("department", appt.Department).Msg("appointment created")
	return appt, nil
}

// ListAppointments returns the patient's appointments. Unknown patients are not created.
func (s *Service) ListAppointments(ctx context.Context, patientID string) ([]model.Appointment, error) {
	id, err := normalizeID(patientID)
	if err != nil {
		return nil, err
	}
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Appointments == nil {
		return []model.Appointment{}, nil
	}
	return rec.Appointments, nil
}

// UpdateAppointment moves an appointment to newDate.
func (s *Service) UpdateAppointment(ctx context.Context, patientID string, appointmentID int, newDate string) error {
	return s.mutateAppointment(ctx, patientID, appointmentID, func(rec *model.PatientRecord, i int) {
		rec.Appointments[i].Date = newDate
	})
}

// CancelAppointment removes an appointment. Cancelling it again reports ErrAppointmentNotFound.
func (s *Service) CancelAppointment(ctx context.Context, patientID string, appointmentID int) error {
	return s.mutateAppointment(ctx, patientID, appointmentID, func(rec *model.PatientRecord, i int) {
		rec.Appointments = append(rec.Appointments[:i], rec.Appointments[i+1:]...)
	})
}

func (s *Service) mutateAppointment(ctx context.Context, patientID string, appointmentID int, apply func(*model.PatientRecord, int)) error {
	id, err := normalizeID(patientID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	rec, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	i := rec.FindAppointment(appointmentID)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrAppointmentNotFound, appointmentID)
	}
	apply(rec, i)
	if err := s.save(ctx, rec); err != nil {
		return err
	}
	s.log.Info().Str("tc_number", id).Int("appointment_id", appointmentID).Msg("appointment changed")
	return nil
}
