package referral

import (
	"errors"
	"fmt"
)

// Error categories. Callers test with errors.Is and map them to client responses.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrPatientNotFound     = fmt.Errorf("patient %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	ErrInvalidDepartment   = fmt.Errorf("%w: invalid department", ErrValidation)
	ErrInvalidDoctor       = fmt.Errorf("%w: doctor index out of range", ErrValidation)
	ErrMissingPatientID    = fmt.Errorf("%w: tc_number is required", ErrValidation)
	ErrConcurrentUpdate    = fmt.Errorf("%w: patient record was modified concurrently", ErrConflict)
)
