package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error)
	List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.AttendanceFilter) ([]entity.Attendance, int64, error)
	Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
	ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.AttendanceReportRow, error)
}
