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
	ErrTreatmentPlanNotFound     = errors.New("treatment plan not found")
	ErrAttendanceNotEvaluation   = errors.New("treatment plans can only be created from an evaluation attendance")
	ErrAttendancePatientMismatch = errors.New("attendance does not belong to the given patient")
)

type TreatmentPlanUsecase interface {
	Create(ctx context.Context, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TreatmentPlanResponse, error)
	List(ctx context.Context, q entity.ListQuery) ([]dto.TreatmentPlanResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type treatmentPlanUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	planRepo       repository.TreatmentPlanRepository
	attendanceRepo repository.AttendanceRepository
	patientRepo    repository.PatientRepository
	auditService   service.AuditService
}

func NewTreatmentPlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	planRepo repository.TreatmentPlanRepository,
	attendanceRepo repository.AttendanceRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) TreatmentPlanUsecase {
	return &treatmentPlanUsecase{
		db:             db,
		log:            log,
		planRepo:       planRepo,
		attendanceRepo: attendanceRepo,
		patientRepo:    patientRepo,
		auditService:   auditService,
	}
}

func (u *treatmentPlanUsecase) Create(ctx context.Context, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	attendance, err := u.attendanceRepo.FindByID(ctx, tx, req.AttendanceID)
	if err != nil {
		u.log.Warnf("Failed to find attendance %s: %+v", req.AttendanceID, err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}
	if !attendance.IsEvaluation() {
		return nil, ErrAttendanceNotEvaluation
	}
	if attendance.PatientID != req.PatientID {
		return nil, ErrAttendancePatientMismatch
	}

	plan := converter.TreatmentPlanFromCreateRequest(req)

	if err := u.planRepo.Create(ctx, tx, plan); err != nil {
		u.log.Warnf("Failed to create treatment plan: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPlanCreate, plan.ID, nil, plan)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentPlanToResponse(plan), nil
}

func (u *treatmentPlanUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.TreatmentPlanResponse, error) {
	plan, err := u.planRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment plan %s: %+v", id, err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrTreatmentPlanNotFound
	}

	return converter.TreatmentPlanToResponse(plan), nil
}

func (u *treatmentPlanUsecase) List(ctx context.Context, q entity.ListQuery) ([]dto.TreatmentPlanResponse, int64, error) {
	plans, total, err := u.planRepo.List(ctx, u.db, q)
	if err != nil {
		u.log.Warnf("Failed to list treatment plans: %+v", err)
		return nil, 0, err
	}

	return converter.TreatmentPlansToResponses(plans), total, nil
}

func (u *treatmentPlanUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment plan %s: %+v", id, err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrTreatmentPlanNotFound
	}

	oldValue := *plan

	converter.ApplyTreatmentPlanUpdate(plan, req)

	if err := u.planRepo.Update(ctx, tx, plan); err != nil {
		u.log.Warnf("Failed to update treatment plan %s: %+v", id, err)
		return nil, err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPlanUpdate, plan.ID, &oldValue, plan)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentPlanToResponse(plan), nil
}

func (u *treatmentPlanUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment plan %s: %+v", id, err)
		return err
	}
	if plan == nil {
		return ErrTreatmentPlanNotFound
	}

	if err := u.planRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete treatment plan %s: %+v", id, err)
		return err
	}

	u.recordAudit(ctx, tx, entity.AuditActionPlanDelete, id, plan, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *treatmentPlanUsecase) recordAudit(ctx context.Context, tx *gorm.DB, action string, entityID uuid.UUID, oldValue, newValue interface{}) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = u.auditService.Record(ctx, tx, userID, action, "treatment_plan", entityID.String(), oldValue, newValue)
}
