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

type transactionRepository struct{}

func NewTransactionRepository() domainRepo.TransactionRepository {
	return &transactionRepository{}
}

func (r *transactionRepository) Create(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error {
	return db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) CountByAttendanceID(ctx context.Context, db *gorm.DB, attendanceID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Transaction{}).Where("attendance_id = ?", attendanceID).Count(&count).Error
	return count, err
}

func (r *transactionRepository) List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.TransactionFilter) ([]entity.Transaction, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Transaction{})

	if filter != nil {
		if filter.Kind != nil {
			query = query.Where("kind = ?", *filter.Kind)
		}
		if filter.Paid != nil {
			query = query.Where("paid = ?", *filter.Paid)
		}
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("category ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []entity.Transaction
	err := query.Order(q.Order()).Limit(q.Limit).Offset(q.Offset()).Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *transactionRepository) Update(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error {
	return db.WithContext(ctx).Omit("Attendance").Save(transaction).Error
}

func (r *transactionRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Transaction{}).Error
}

// ReportRows projects ledger lines in [start, end] down to the fields the
// finance overview aggregates over. Due date buckets the line into a day.
func (r *transactionRepository) ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.TransactionReportRow, error) {
	var rows []entity.TransactionReportRow
	err := db.WithContext(ctx).Model(&entity.Transaction{}).
		Select("date_trunc('day', due_date) AS day, kind, category, amount").
		Where("due_date >= ? AND due_date <= ?", start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
