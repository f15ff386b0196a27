package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, db *gorm.DB, notification *entity.Notification) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Notification, error)
	ListByRecipient(ctx context.Context, db *gorm.DB, recipientID uuid.UUID, q entity.ListQuery) ([]entity.Notification, int64, error)
	Update(ctx context.Context, db *gorm.DB, notification *entity.Notification) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
