package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/patient-referral/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// patientRow is the SQL layout of a PatientRecord; collections are JSON columns.
type patientRow struct {
	ID                string         `gorm:"column:id;primaryKey;size:32"`
	PastConditions    datatypes.JSON `gorm:"column:past_conditions;type:json"`
	Medications       datatypes.JSON `gorm:"column:medications;type:json"`
	Appointments      datatypes.JSON `gorm:"column:appointments;type:json"`
	NextAppointmentID int            `gorm:"column:next_appointment_id;not null;default:1"`
	Version           int64          `gorm:"column:version;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (patientRow) TableName() string { return "patient_records" }

func toRow(rec *model.PatientRecord) (patientRow, error) {
	conditions, err := json.Marshal(rec.PastConditions)
	if err != nil {
		return patientRow{}, err
	}
	meds, err := json.Marshal(rec.Medications)
	if err != nil {
		return patientRow{}, err
	}
	appts, err := json.Marshal(rec.Appointments)
	if err != nil {
		return patientRow{}, err
	}
	return patientRow{
		ID:                rec.ID,
		PastConditions:    datatypes.JSON(conditions),
		Medications:       datatypes.JSON(meds),
		Appointments:      datatypes.JSON(appts),
		NextAppointmentID: rec.NextAppointmentID,
		Version:           rec.Version,
	}, nil
}

func fromRow(row patientRow) (*model.PatientRecord, error) {
	rec := model.NewPatientRecord(row.ID)
	rec.NextAppointmentID = row.NextAppointmentID
	rec.Version = row.Version
	if len(row.PastConditions) > 0 {
		if err := json.Unmarshal(row.PastConditions, &rec.PastConditions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal past conditions: %w", err)
		}
	}
	if len(row.Medications) > 0 {
		if err := json.Unmarshal(row.Medications, &rec.Medications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal medications: %w", err)
		}
	}
	if len(row.Appointments) > 0 {
		if err := json.Unmarshal(row.Appointments, &rec.Appointments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal appointments: %w", err)
		}
	}
	return rec, nil
}

// GormStore keeps patient records in a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a store backed by db. Call AutoMigrate before first use.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the patient record and profile tables.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&patientRow{}, &model.PatientProfile{})
}

func (s *GormStore) Get(ctx context.Context, id string) (*model.PatientRecord, error) {
	var row patientRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromRow(row)
}

func (s *GormStore) Upsert(ctx context.Context, rec *model.PatientRecord) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	row.Version = rec.Version + 1

	db := s.db.WithContext(ctx)
	if rec.Version == 0 {
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}
		rec.Version = row.Version
		return nil
	}

	result := db.Model(&patientRow{}).
		Where("id = ? AND version = ?", rec.ID, rec.Version).
		Updates(map[string]interface{}{
			"past_conditions":     row.PastConditions,
			"medications":         row.Medications,
			"appointments":        row.Appointments,
			"next_appointment_id": row.NextAppointmentID,
			"version":             row.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	rec.Version = row.Version
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&patientRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormProfiles persists registration profiles through gorm.
type GormProfiles struct {
	db *gorm.DB
}

// NewGormProfiles returns a ProfileRepository backed by db.
func NewGormProfiles(db *gorm.DB) *GormProfiles {
	return &GormProfiles{db: db}
}

// CreateProfile inserts profile, failing with ErrDuplicate when the tc_number is already registered.
func (p *GormProfiles) CreateProfile(ctx context.Context, profile *model.PatientProfile) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PatientProfile
		if err := tx.Where("tc_number = ?", profile.TCNumber).First(&existing).Error; err == nil {
			return fmt.Errorf("%w: tc_number %s already registered", ErrDuplicate, profile.TCNumber)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(profile).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: tc_number %s already registered", ErrDuplicate, profile.TCNumber)
			}
			return err
		}
		return nil
	})
}

// DeleteProfile hard-deletes the profile so the unique tc_number index is released.
func (p *GormProfiles) DeleteProfile(ctx context.Context, tcNumber string) error {
	result := p.db.WithContext(ctx).Unscoped().Where("tc_number = ?", tcNumber).Delete(&model.PatientProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
