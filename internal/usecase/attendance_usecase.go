package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	ErrAttendanceNotFound       = errors.New("attendance not found")
	ErrAttendanceInUse          = errors.New("attendance is referenced by treatment plans")
	ErrProfessionalNotFound     = errors.New("professional not found")
	ErrInvalidEnumValue         = errors.New("invalid enum value")
	ErrFinanceAmountNotPositive = errors.New("finance amount must be greater than zero when launching to finance")
)

// AttachmentStore abstracts the object storage used for attendance files.
type AttachmentStore interface {
	PresignUpload(ctx context.Context, key, contentType string, size int64) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	TTL() time.Duration
}

type AttendanceUsecase interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error)
	List(ctx context.Context, q entity.ListQuery, filter *entity.AttendanceFilter) ([]dto.AttendanceResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PresignAttachment(ctx context.Context, id uuid.UUID, req *dto.PresignAttachmentRequest) (*dto.PresignAttachmentResponse, error)
}

type attendanceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	attendanceRepo  repository.AttendanceRepository
	patientRepo     repository.PatientRepository
	transactionRepo repository.TransactionRepository
	auditService    service.AuditService
	store           AttachmentStore
}

func NewAttendanceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	attendanceRepo repository.AttendanceRepository,
	patientRepo repository.PatientRepository,
	transactionRepo repository.TransactionRepository,
	auditService service.AuditService,
	store AttachmentStore,
) AttendanceUsecase {
	return &attendanceUsecase{
		db:              db,
		log:             log,
		attendanceRepo:  attendanceRepo,
		patientRepo:     patientRepo,
		transactionRepo: transactionRepo,
		auditService:    auditService,
		store:           store,
	}
}

func (u *attendanceUsecase) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	attendance, err := converter.AttendanceFromCreateRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnumValue, err)
	}

	if attendance.Finance.LaunchToFinance && !attendance.Finance.Amount.IsPositive() {
		return nil, ErrFinanceAmountNotPositive
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, attendance.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", attendance.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.attendanceRepo.Create(ctx, tx, attendance); err != nil {
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to create attendance: %+v", err)
		return nil, err
	}

	// Finance sync: a finance-enabled attendance mirrors exactly one income
	// ledger line, created in the same transaction so the two never diverge.
	if attendance.Finance.LaunchToFinance {
		if err := u.transactionRepo.Create(ctx, tx, financeTransaction(attendance)); err != nil {
			u.log.Warnf("Failed to create finance transaction for attendance %s: %+v", attendance.ID, err)
			return nil, err
		}
	}

	u.recordAudit(ctx, tx, entity.AuditActionAttendanceCreate, attendance.ID, nil, attendance)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AttendanceToResponse(attendance), nil
}

func (u *attendanceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error) {
	attendance, err := u.attendanceRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance %s: %+v", id, err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}

	return converter.AttendanceToResponse(attendance), nil
}

func (u *attendanceUsecase) List(ctx context.Context, q entity.ListQuery, filter *entity.AttendanceFilter) ([]dto.AttendanceResponse, int64, error) {
	attendances, total, err := u.attendanceRepo.List(ctx, u.db, q, filter)
	if err != nil {
		u.log.Warnf("Failed to list attendances: %+v", err)
		return nil, 0, err
	}

	return converter.AttendancesToResponses(attendances), total, nil
}

func (u *attendanceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	attendance, err := u.attendanceRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance %s: %+v", id, err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}

	oldValue := *attendance

	converter.ApplyAttendanceUpdate(attendance, req)

	if err := u.attendanceRepo.Update(ctx, tx, attendance); err != nil {
		u.log.Warnf("Failed to update attendance %s: %+v", id, err)
		return nil, err
	}

	u.recordAudit(ctx, tx, entity.AuditActionAttendanceUpdate, attendance.ID, &oldValue, attendance)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AttendanceToResponse(attendance), nil
}

func (u *attendanceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	attendance, err := u.attendanceRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance %s: %+v", id, err)
		return err
	}
	if attendance == nil {
		return ErrAttendanceNotFound
	}

	if err := u.attendanceRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "attendance") {
			return ErrAttendanceInUse
		}
		u.log.Warnf("Failed to delete attendance %s: %+v", id, err)
		return err
	}

	u.recordAudit(ctx, tx, entity.AuditActionAttendanceDelete, id, attendance, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.releaseAttachments(ctx, attendance)

	return nil
}

// releaseAttachments removes the stored blobs of a deleted attendance. The
// record is already gone, so failures are logged and left for a storage sweep.
func (u *attendanceUsecase) releaseAttachments(ctx context.Context, attendance *entity.Attendance) {
	for _, attachment := range attendance.Attachments {
		if attachment.Key == "" {
			continue
		}
		if err := u.store.Delete(ctx, attachment.Key); err != nil {
			u.log.Warnf("Failed to delete attachment blob %s: %+v", attachment.Key, err)
		}
	}
}

// PresignAttachment issues a direct-to-storage upload URL for one attendance
// file. The blob key is namespaced by attendance so orphans are traceable.
func (u *attendanceUsecase) PresignAttachment(ctx context.Context, id uuid.UUID, req *dto.PresignAttachmentRequest) (*dto.PresignAttachmentResponse, error) {
	attendance, err := u.attendanceRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance %s: %+v", id, err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}

	key := fmt.Sprintf("attachments/%s/%s-%s", id, uuid.New().String(), req.Name)

	uploadURL, err := u.store.PresignUpload(ctx, key, req.Type, req.Size)
	if err != nil {
		u.log.Warnf("Failed to presign upload for attendance %s: %+v", id, err)
		return nil, err
	}

	fileURL, err := u.store.PresignDownload(ctx, key)
	if err != nil {
		u.log.Warnf("Failed to presign download for attendance %s: %+v", id, err)
		return nil, err
	}

	return &dto.PresignAttachmentResponse{
		UploadURL: uploadURL,
		FileURL:   fileURL,
		Key:       key,
		ExpiresIn: int64(u.store.TTL().Seconds()),
	}, nil
}

// financeTransaction builds the income ledger line mirrored from a
// finance-enabled attendance.
func financeTransaction(attendance *entity.Attendance) *entity.Transaction {
	competence := attendance.Date.Truncate(24 * time.Hour)
	return &entity.Transaction{
		Kind:           entity.TransactionKindIncome,
		Category:       "attendance",
		Amount:         attendance.Finance.Amount,
		PaymentMethod:  attendance.Finance.PaymentMethod,
		Paid:           attendance.Finance.Paid,
		DueDate:        attendance.Date,
		CompetenceDate: &competence,
		PaidAt:         attendance.Finance.PaidAt,
		AttendanceID:   &attendance.ID,
	}
}

func (u *attendanceUsecase) recordAudit(ctx context.Context, tx *gorm.DB, action string, entityID uuid.UUID, oldValue, newValue interface{}) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = u.auditService.Record(ctx, tx, userID, action, "attendance", entityID.String(), oldValue, newValue)
}
