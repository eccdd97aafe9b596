// Package store keeps patient records behind a key/value style interface so the
// referral service can run against process memory, a SQL database or Redis.
package store

import (
	"context"
	"errors"

	"github.com/ariebrainware/patient-referral/model"
)

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned by Upsert when the stored version moved since the record was read.
	ErrVersionConflict = errors.New("record version conflict")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

// PatientStore persists patient records by identifier.
//
// Upsert is a compare-and-swap on Version: it succeeds only when the stored
// version equals rec.Version (0 meaning "must not exist yet") and on success
// bumps rec.Version. Get and Upsert work on copies; callers never share
// memory with the store.
type PatientStore interface {
	Get(ctx context.Context, id string) (*model.PatientRecord, error)
	Upsert(ctx context.Context, rec *model.PatientRecord) error
	Delete(ctx context.Context, id string) error
}

// ProfileRepository persists registration profiles.
// DeleteProfile removes the profile for tcNumber outright so the number can be registered again.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.PatientProfile) error
	DeleteProfile(ctx context.Context, tcNumber string) error
}

// Seed writes every record that is not stored yet.
func Seed(ctx context.Context, s PatientStore, records []*model.PatientRecord) error {
	for _, rec := range records {
		_, err := s.Get(ctx, rec.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		seed := rec.Clone()
		seed.Version = 0
		if err := s.Upsert(ctx, seed); err != nil && !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}
	return nil
}
