package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type fakeAppointmentRepo struct {
	patientCount int64
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) CountByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (int64, error) {
	return f.patientCount, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return nil
}

func TestPatientDeleteMapsForeignKeyToConflict(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	patient := &entity.Patient{ID: uuid.New()}
	patientRepo := &fakePatientRepo{
		patient: patient,
		deleteErr: &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "attendances_patient_id_fkey",
		},
	}

	uc := NewPatientUsecase(db, newTestLogger(), patientRepo, &fakeAppointmentRepo{}, &fakeAuditService{})

	if err := uc.Delete(context.Background(), patient.ID); err != ErrPatientHasRecords {
		t.Fatalf("err = %v, want ErrPatientHasRecords", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPatientDeleteBlockedByAppointments(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	patient := &entity.Patient{ID: uuid.New()}
	patientRepo := &fakePatientRepo{patient: patient}

	uc := NewPatientUsecase(db, newTestLogger(), patientRepo, &fakeAppointmentRepo{patientCount: 2}, &fakeAuditService{})

	if err := uc.Delete(context.Background(), patient.ID); err != ErrPatientHasAppointments {
		t.Fatalf("err = %v, want ErrPatientHasAppointments", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
