package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalHistoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalHistory, error)
	ListByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID, q entity.ListQuery) ([]entity.MedicalHistory, int64, error)
	Update(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
