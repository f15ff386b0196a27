package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("invalid date range, expected start and end as RFC3339 or YYYY-MM-DD with end >= start")

type ReportUsecase interface {
	FinanceOverview(ctx context.Context, start, end string) (*dto.FinanceOverviewResponse, error)
	AttendanceStats(ctx context.Context, start, end string) (*dto.AttendanceStatsResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	transactionRepo repository.TransactionRepository
	attendanceRepo  repository.AttendanceRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactionRepo repository.TransactionRepository,
	attendanceRepo repository.AttendanceRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		transactionRepo: transactionRepo,
		attendanceRepo:  attendanceRepo,
	}
}

func (u *reportUsecase) FinanceOverview(ctx context.Context, start, end string) (*dto.FinanceOverviewResponse, error) {
	startAt, endAt, err := parseReportRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := u.transactionRepo.ReportRows(ctx, u.db, startAt, endAt)
	if err != nil {
		u.log.Warnf("Failed to load finance report rows: %+v", err)
		return nil, err
	}

	return aggregateFinance(rows, start, end), nil
}

func (u *reportUsecase) AttendanceStats(ctx context.Context, start, end string) (*dto.AttendanceStatsResponse, error) {
	startAt, endAt, err := parseReportRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := u.attendanceRepo.ReportRows(ctx, u.db, startAt, endAt)
	if err != nil {
		u.log.Warnf("Failed to load attendance report rows: %+v", err)
		return nil, err
	}

	return aggregateAttendances(rows, start, end), nil
}

// parseReportRange validates the report window. Bounds are RFC3339 timestamps
// or date-only values; a date-only end is inclusive, so it extends to the last
// instant of that day.
func parseReportRange(start, end string) (time.Time, time.Time, error) {
	startAt, _, err := parseReportBound(start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	endAt, endDateOnly, err := parseReportBound(end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if endDateOnly {
		endAt = endAt.Add(24*time.Hour - time.Nanosecond)
	}
	if endAt.Before(startAt) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return startAt, endAt, nil
}

func parseReportBound(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(reportDateLayout, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
