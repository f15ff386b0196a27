package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrScheduledAtRequired  = errors.New("scheduled_at is required when send_mode is scheduled")
	ErrNotificationNotOwned = errors.New("notification does not belong to you")
	ErrRecipientNotFound    = errors.New("recipient not found")
)

type NotificationUsecase interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	ListMine(ctx context.Context, q entity.ListQuery) ([]dto.NotificationResponse, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	senderID, _ := middleware.GetUserIDFromContext(ctx)

	notification, err := converter.NotificationFromCreateRequest(req, senderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnumValue, err)
	}

	if notification.SendMode == entity.NotificationSendModeScheduled && notification.ScheduledAt == nil {
		return nil, ErrScheduledAtRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.notificationRepo.Create(ctx, tx, notification); err != nil {
		if isForeignKeyError(err, "recipient") {
			return nil, ErrRecipientNotFound
		}
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	return converter.NotificationToResponse(notification), nil
}

// ListMine returns the notifications addressed to the logged-in user.
func (u *notificationUsecase) ListMine(ctx context.Context, q entity.ListQuery) ([]dto.NotificationResponse, int64, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, 0, errors.New("user not found in context")
	}

	notifications, total, err := u.notificationRepo.ListByRecipient(ctx, u.db, userID, q)
	if err != nil {
		u.log.Warnf("Failed to list notifications for %s: %+v", userID, err)
		return nil, 0, err
	}

	return converter.NotificationsToResponses(notifications), total, nil
}

// MarkRead flips an unread notification to read. Only the recipient can read
// their own notifications.
func (u *notificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	notification, err := u.notificationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if notification.RecipientID != userID {
		return nil, ErrNotificationNotOwned
	}

	notification.Status = entity.NotificationStatusRead

	if err := u.notificationRepo.Update(ctx, tx, notification); err != nil {
		u.log.Warnf("Failed to update notification %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	notification, err := u.notificationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if err := converter.ApplyNotificationUpdate(notification, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnumValue, err)
	}

	if notification.SendMode == entity.NotificationSendModeScheduled && notification.ScheduledAt == nil {
		return nil, ErrScheduledAtRequired
	}

	if err := u.notificationRepo.Update(ctx, tx, notification); err != nil {
		u.log.Warnf("Failed to update notification %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	notification, err := u.notificationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	if err := u.notificationRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete notification %s: %+v", id, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
