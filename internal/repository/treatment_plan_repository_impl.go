package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentPlanRepository struct{}

func NewTreatmentPlanRepository() domainRepo.TreatmentPlanRepository {
	return &treatmentPlanRepository{}
}

func (r *treatmentPlanRepository) Create(ctx context.Context, db *gorm.DB, plan *entity.TreatmentPlan) error {
	return db.WithContext(ctx).Create(plan).Error
}

func (r *treatmentPlanRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TreatmentPlan, error) {
	var plan entity.TreatmentPlan
	err := db.WithContext(ctx).Preload("Patient").Preload("Attendance").Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *treatmentPlanRepository) List(ctx context.Context, db *gorm.DB, q entity.ListQuery) ([]entity.TreatmentPlan, int64, error) {
	query := db.WithContext(ctx).Model(&entity.TreatmentPlan{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.
			Joins("JOIN patients ON patients.id = treatment_plans.patient_id").
			Where("patients.name ILIKE ? OR treatment_plans.procedure_description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []entity.TreatmentPlan
	err := query.Preload("Patient").
		Order("treatment_plans." + q.Order()).
		Limit(q.Limit).Offset(q.Offset()).
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *treatmentPlanRepository) Update(ctx context.Context, db *gorm.DB, plan *entity.TreatmentPlan) error {
	return db.WithContext(ctx).Omit("Patient", "Attendance").Save(plan).Error
}

func (r *treatmentPlanRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.TreatmentPlan{}).Error
}
