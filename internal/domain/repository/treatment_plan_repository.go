package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentPlanRepository interface {
	Create(ctx context.Context, db *gorm.DB, plan *entity.TreatmentPlan) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TreatmentPlan, error)
	List(ctx context.Context, db *gorm.DB, q entity.ListQuery) ([]entity.TreatmentPlan, int64, error)
	Update(ctx context.Context, db *gorm.DB, plan *entity.TreatmentPlan) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
