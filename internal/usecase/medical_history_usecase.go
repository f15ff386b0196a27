package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicalHistoryNotFound = errors.New("medical history entry not found")

type MedicalHistoryUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateMedicalHistoryRequest) (*dto.MedicalHistoryResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, q entity.ListQuery) ([]dto.MedicalHistoryResponse, int64, error)
	Update(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateMedicalHistoryRequest) (*dto.MedicalHistoryResponse, error)
	Delete(ctx context.Context, patientID, id uuid.UUID) error
}

type medicalHistoryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	historyRepo repository.MedicalHistoryRepository
	patientRepo repository.PatientRepository
}

func NewMedicalHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	historyRepo repository.MedicalHistoryRepository,
	patientRepo repository.PatientRepository,
) MedicalHistoryUsecase {
	return &medicalHistoryUsecase{
		db:          db,
		log:         log,
		historyRepo: historyRepo,
		patientRepo: patientRepo,
	}
}

func (u *medicalHistoryUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateMedicalHistoryRequest) (*dto.MedicalHistoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	history := converter.MedicalHistoryFromCreateRequest(patientID, req)

	if err := u.historyRepo.Create(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to create medical history: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalHistoryToResponse(history), nil
}

func (u *medicalHistoryUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, q entity.ListQuery) ([]dto.MedicalHistoryResponse, int64, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, ErrPatientNotFound
	}

	histories, total, err := u.historyRepo.ListByPatient(ctx, u.db, patientID, q)
	if err != nil {
		u.log.Warnf("Failed to list medical history for patient %s: %+v", patientID, err)
		return nil, 0, err
	}

	return converter.MedicalHistoriesToResponses(histories), total, nil
}

func (u *medicalHistoryUsecase) Update(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateMedicalHistoryRequest) (*dto.MedicalHistoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	history, err := u.historyRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical history %s: %+v", id, err)
		return nil, err
	}
	if history == nil || history.PatientID != patientID {
		return nil, ErrMedicalHistoryNotFound
	}

	converter.ApplyMedicalHistoryUpdate(history, req)

	if err := u.historyRepo.Update(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to update medical history %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalHistoryToResponse(history), nil
}

func (u *medicalHistoryUsecase) Delete(ctx context.Context, patientID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	history, err := u.historyRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical history %s: %+v", id, err)
		return err
	}
	if history == nil || history.PatientID != patientID {
		return ErrMedicalHistoryNotFound
	}

	if err := u.historyRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete medical history %s: %+v", id, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
