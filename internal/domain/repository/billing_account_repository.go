package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingAccountRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.BillingAccount, error)
	Upsert(ctx context.Context, db *gorm.DB, account *entity.BillingAccount) error
}
