package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalHistoryRepository struct{}

func NewMedicalHistoryRepository() domainRepo.MedicalHistoryRepository {
	return &medicalHistoryRepository{}
}

func (r *medicalHistoryRepository) Create(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error {
	return db.WithContext(ctx).Create(history).Error
}

func (r *medicalHistoryRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalHistory, error) {
	var history entity.MedicalHistory
	err := db.WithContext(ctx).Where("id = ?", id).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

func (r *medicalHistoryRepository) ListByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID, q entity.ListQuery) ([]entity.MedicalHistory, int64, error) {
	query := db.WithContext(ctx).Model(&entity.MedicalHistory{}).Where("patient_id = ?", patientID)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var histories []entity.MedicalHistory
	err := query.Order(q.Order()).Limit(q.Limit).Offset(q.Offset()).Find(&histories).Error
	if err != nil {
		return nil, 0, err
	}
	return histories, total, nil
}

func (r *medicalHistoryRepository) Update(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error {
	return db.WithContext(ctx).Omit("Patient").Save(history).Error
}

func (r *medicalHistoryRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalHistory{}).Error
}
