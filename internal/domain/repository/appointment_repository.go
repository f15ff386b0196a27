package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (int64, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
