package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrPhoneAlreadyExists     = errors.New("a patient with this phone already exists")
	ErrPatientHasAppointments = errors.New("patient has appointments and cannot be deleted")
	ErrPatientHasRecords      = errors.New("patient has clinical records and cannot be deleted")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, q entity.ListQuery) ([]dto.PatientResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := converter.PatientFromCreateRequest(req)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByPhone(ctx, tx, patient.Phone)
	if err != nil {
		u.log.Warnf("Failed to check phone uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneAlreadyExists
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPatientCreate, patient.ID, nil, patient)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, q entity.ListQuery) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.List(ctx, u.db, q)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := *patient

	if req.Phone != nil && *req.Phone != patient.Phone {
		existing, err := u.patientRepo.FindByPhone(ctx, tx, *req.Phone)
		if err != nil {
			u.log.Warnf("Failed to check phone uniqueness: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPhoneAlreadyExists
		}
	}

	if err := converter.ApplyPatientUpdate(patient, req); err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPatientUpdate, patient.ID, &oldValue, patient)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	count, err := u.appointmentRepo.CountByPatientID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments for patient %s: %+v", id, err)
		return err
	}
	if count > 0 {
		return ErrPatientHasAppointments
	}

	if err := u.patientRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasRecords
		}
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPatientDelete, id, patient, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// recordAudit writes the audit entry inside the current transaction. Audit
// failures are logged but do not abort the clinical change.
func (u *patientUsecase) recordAudit(ctx context.Context, tx *gorm.DB, action string, entityID uuid.UUID, oldValue, newValue interface{}) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = u.auditService.Record(ctx, tx, userID, action, "patient", entityID.String(), oldValue, newValue)
}
