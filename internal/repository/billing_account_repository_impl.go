package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type billingAccountRepository struct{}

func NewBillingAccountRepository() domainRepo.BillingAccountRepository {
	return &billingAccountRepository{}
}

func (r *billingAccountRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.BillingAccount, error) {
	var account entity.BillingAccount
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *billingAccountRepository) Upsert(ctx context.Context, db *gorm.DB, account *entity.BillingAccount) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"customer_ref", "plan_ref", "subscription_ref", "status", "current_period_end", "updated_at",
		}),
	}).Create(account).Error
}
