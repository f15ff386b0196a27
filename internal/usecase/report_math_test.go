package usecase

import (
	"testing"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateFinanceEmpty(t *testing.T) {
	resp := aggregateFinance(nil, "2026-01-01", "2026-01-31")

	if !resp.TotalIncome.IsZero() || !resp.TotalExpense.IsZero() || !resp.Balance.IsZero() {
		t.Errorf("totals = %v/%v/%v, want all zero", resp.TotalIncome, resp.TotalExpense, resp.Balance)
	}
	if !resp.AvgPerActiveDay.IsZero() {
		t.Errorf("AvgPerActiveDay = %v, want zero", resp.AvgPerActiveDay)
	}
	if resp.PerDay == nil || len(resp.PerDay) != 0 {
		t.Errorf("PerDay = %v, want empty slice", resp.PerDay)
	}
	if resp.PerCategory == nil || len(resp.PerCategory) != 0 {
		t.Errorf("PerCategory = %v, want empty slice", resp.PerCategory)
	}
}

func TestAggregateFinance(t *testing.T) {
	rows := []entity.TransactionReportRow{
		{Day: day("2026-01-02"), Kind: entity.TransactionKindIncome, Category: "attendance", Amount: decimal.NewFromInt(200)},
		{Day: day("2026-01-02"), Kind: entity.TransactionKindExpense, Category: "rent", Amount: decimal.NewFromInt(80)},
		{Day: day("2026-01-05"), Kind: entity.TransactionKindIncome, Category: "attendance", Amount: decimal.NewFromInt(150)},
		{Day: day("2026-01-01"), Kind: entity.TransactionKindIncome, Category: "other", Amount: decimal.NewFromInt(50)},
	}

	resp := aggregateFinance(rows, "2026-01-01", "2026-01-31")

	if !resp.TotalIncome.Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalIncome = %v, want 400", resp.TotalIncome)
	}
	if !resp.TotalExpense.Equal(decimal.NewFromInt(80)) {
		t.Errorf("TotalExpense = %v, want 80", resp.TotalExpense)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(320)) {
		t.Errorf("Balance = %v, want 320", resp.Balance)
	}

	// Three days carry records, so the income average divides by three.
	wantAvg := decimal.NewFromFloat(133.33)
	if !resp.AvgPerActiveDay.Equal(wantAvg) {
		t.Errorf("AvgPerActiveDay = %v, want %v", resp.AvgPerActiveDay, wantAvg)
	}

	if len(resp.PerDay) != 3 {
		t.Fatalf("len(PerDay) = %d, want 3", len(resp.PerDay))
	}
	if resp.PerDay[0].Date != "2026-01-01" || resp.PerDay[2].Date != "2026-01-05" {
		t.Errorf("PerDay not sorted by date: %v", resp.PerDay)
	}
	if !resp.PerDay[1].Income.Equal(decimal.NewFromInt(200)) || !resp.PerDay[1].Expense.Equal(decimal.NewFromInt(80)) {
		t.Errorf("PerDay[1] = %+v, want income 200 expense 80", resp.PerDay[1])
	}

	if len(resp.PerCategory) != 3 {
		t.Fatalf("len(PerCategory) = %d, want 3", len(resp.PerCategory))
	}
	first := resp.PerCategory[0]
	if first.Category != "attendance" || first.Kind != "INCOME" || !first.Total.Equal(decimal.NewFromInt(350)) {
		t.Errorf("PerCategory[0] = %+v, want attendance/INCOME/350", first)
	}
}

func TestAggregateAttendancesEmpty(t *testing.T) {
	resp := aggregateAttendances(nil, "2026-01-01", "2026-01-31")

	if resp.Total != 0 || resp.DistinctPatients != 0 || resp.Evaluations != 0 || resp.Evolutions != 0 {
		t.Errorf("counts = %+v, want all zero", resp)
	}
	if !resp.AvgPerActiveDay.IsZero() {
		t.Errorf("AvgPerActiveDay = %v, want zero", resp.AvgPerActiveDay)
	}
	if resp.PerDay == nil || len(resp.PerDay) != 0 {
		t.Errorf("PerDay = %v, want empty slice", resp.PerDay)
	}
}

func TestAggregateAttendances(t *testing.T) {
	patientA := uuid.New()
	patientB := uuid.New()

	rows := []entity.AttendanceReportRow{
		{Day: day("2026-02-03"), Type: entity.AttendanceTypeEvaluation, PatientID: patientA},
		{Day: day("2026-02-03"), Type: entity.AttendanceTypeEvolution, PatientID: patientA},
		{Day: day("2026-02-03"), Type: entity.AttendanceTypeEvolution, PatientID: patientB},
		{Day: day("2026-02-10"), Type: entity.AttendanceTypeEvolution, PatientID: patientA},
	}

	resp := aggregateAttendances(rows, "2026-02-01", "2026-02-28")

	if resp.Total != 4 {
		t.Errorf("Total = %d, want 4", resp.Total)
	}
	if resp.DistinctPatients != 2 {
		t.Errorf("DistinctPatients = %d, want 2", resp.DistinctPatients)
	}
	if resp.Evaluations != 1 || resp.Evolutions != 3 {
		t.Errorf("Evaluations/Evolutions = %d/%d, want 1/3", resp.Evaluations, resp.Evolutions)
	}

	if len(resp.PerDay) != 2 {
		t.Fatalf("len(PerDay) = %d, want 2", len(resp.PerDay))
	}
	if resp.PerDay[0].Date != "2026-02-03" || resp.PerDay[0].Count != 3 {
		t.Errorf("PerDay[0] = %+v, want 2026-02-03 count 3", resp.PerDay[0])
	}

	// Two active days, four attendances.
	if !resp.AvgPerActiveDay.Equal(decimal.NewFromInt(2)) {
		t.Errorf("AvgPerActiveDay = %v, want 2", resp.AvgPerActiveDay)
	}
}

func TestParseReportRange(t *testing.T) {
	startAt, endAt, err := parseReportRange("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("parseReportRange error = %v", err)
	}
	if !startAt.Equal(day("2026-03-01")) {
		t.Errorf("start = %v", startAt)
	}
	// The end bound is inclusive of the whole last day.
	if !endAt.After(day("2026-03-31")) || !endAt.Before(day("2026-04-01")) {
		t.Errorf("end = %v, want inside 2026-03-31", endAt)
	}

	if _, _, err := parseReportRange("2026-03-31", "2026-03-01"); err == nil {
		t.Error("expected error for end before start")
	}
	if _, _, err := parseReportRange("march 1st", "2026-03-31"); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestParseReportRangeRFC3339(t *testing.T) {
	startAt, endAt, err := parseReportRange("2026-01-01T08:30:00Z", "2026-01-01T17:00:00Z")
	if err != nil {
		t.Fatalf("parseReportRange error = %v", err)
	}
	if startAt.Hour() != 8 || startAt.Minute() != 30 {
		t.Errorf("start = %v, want 08:30", startAt)
	}
	// RFC3339 end bounds are taken as given, no end-of-day extension.
	if endAt.Hour() != 17 || endAt.Minute() != 0 {
		t.Errorf("end = %v, want 17:00", endAt)
	}

	// Mixed bounds: timestamp start, date-only end still covers the full day.
	startAt, endAt, err = parseReportRange("2026-01-01T00:00:00Z", "2026-01-31")
	if err != nil {
		t.Fatalf("parseReportRange error = %v", err)
	}
	if !startAt.Equal(day("2026-01-01")) {
		t.Errorf("start = %v", startAt)
	}
	if !endAt.After(day("2026-01-31")) || !endAt.Before(day("2026-02-01")) {
		t.Errorf("end = %v, want inside 2026-01-31", endAt)
	}

	if _, _, err := parseReportRange("2026-01-02T00:00:00Z", "2026-01-01T00:00:00Z"); err == nil {
		t.Error("expected error for end before start")
	}
}
