package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Transaction, error)
	CountByAttendanceID(ctx context.Context, db *gorm.DB, attendanceID uuid.UUID) (int64, error)
	List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.TransactionFilter) ([]entity.Transaction, int64, error)
	Update(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
	ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.TransactionReportRow, error)
}
