package repository

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct{}

func NewAttendanceRepository() domainRepo.AttendanceRepository {
	return &attendanceRepository{}
}

func (r *attendanceRepository) Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	return db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := db.WithContext(ctx).Preload("Patient").Preload("Professional").Where("id = ?", id).First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.AttendanceFilter) ([]entity.Attendance, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Attendance{})

	if filter != nil {
		if filter.Type != nil {
			query = query.Where("type = ?", *filter.Type)
		}
		if filter.PatientID != "" {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.
			Joins("JOIN patients ON patients.id = attendances.patient_id").
			Where("patients.name ILIKE ? OR attendances.diagnosis ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attendances []entity.Attendance
	err := query.Preload("Patient").
		Order("attendances." + q.Order()).
		Limit(q.Limit).Offset(q.Offset()).
		Find(&attendances).Error
	if err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}

func (r *attendanceRepository) Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	return db.WithContext(ctx).Omit("Patient", "Professional", "Transactions").Save(attendance).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Attendance{}).Error
}

// ReportRows projects attendances in [start, end] down to the fields the
// patient-statistics report aggregates over.
func (r *attendanceRepository) ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.AttendanceReportRow, error) {
	var rows []entity.AttendanceReportRow
	err := db.WithContext(ctx).Model(&entity.Attendance{}).
		Select("date_trunc('day', date) AS day, type, patient_id").
		Where("date >= ? AND date <= ?", start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
