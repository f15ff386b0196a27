package usecase

import (
	"sort"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// aggregateFinance folds raw ledger rows into the finance overview. Averages
// divide by days that actually have records, not calendar days.
func aggregateFinance(rows []entity.TransactionReportRow, start, end string) *dto.FinanceOverviewResponse {
	resp := &dto.FinanceOverviewResponse{
		Start:       start,
		End:         end,
		PerDay:      []dto.DailyFinance{},
		PerCategory: []dto.CategorySum{},
	}

	type categoryKey struct {
		category string
		kind     entity.TransactionKind
	}

	perDay := map[string]*dto.DailyFinance{}
	perCategory := map[categoryKey]decimal.Decimal{}

	for _, row := range rows {
		day := row.Day.Format(reportDateLayout)

		d, ok := perDay[day]
		if !ok {
			d = &dto.DailyFinance{Date: day}
			perDay[day] = d
		}

		switch row.Kind {
		case entity.TransactionKindIncome:
			resp.TotalIncome = resp.TotalIncome.Add(row.Amount)
			d.Income = d.Income.Add(row.Amount)
		case entity.TransactionKindExpense:
			resp.TotalExpense = resp.TotalExpense.Add(row.Amount)
			d.Expense = d.Expense.Add(row.Amount)
		}

		key := categoryKey{category: row.Category, kind: row.Kind}
		perCategory[key] = perCategory[key].Add(row.Amount)
	}

	resp.Balance = resp.TotalIncome.Sub(resp.TotalExpense)

	for _, d := range perDay {
		resp.PerDay = append(resp.PerDay, *d)
	}
	sort.Slice(resp.PerDay, func(i, j int) bool {
		return resp.PerDay[i].Date < resp.PerDay[j].Date
	})

	for key, total := range perCategory {
		resp.PerCategory = append(resp.PerCategory, dto.CategorySum{
			Category: key.category,
			Kind:     string(key.kind),
			Total:    total,
		})
	}
	sort.Slice(resp.PerCategory, func(i, j int) bool {
		if resp.PerCategory[i].Category != resp.PerCategory[j].Category {
			return resp.PerCategory[i].Category < resp.PerCategory[j].Category
		}
		return resp.PerCategory[i].Kind < resp.PerCategory[j].Kind
	})

	if activeDays := len(perDay); activeDays > 0 {
		resp.AvgPerActiveDay = resp.TotalIncome.
			Div(decimal.NewFromInt(int64(activeDays))).
			Round(2)
	}

	return resp
}

// aggregateAttendances folds raw attendance rows into the patient statistics.
func aggregateAttendances(rows []entity.AttendanceReportRow, start, end string) *dto.AttendanceStatsResponse {
	resp := &dto.AttendanceStatsResponse{
		Start:  start,
		End:    end,
		PerDay: []dto.DailyCount{},
	}

	perDay := map[string]int{}
	patients := map[uuid.UUID]struct{}{}

	for _, row := range rows {
		resp.Total++
		perDay[row.Day.Format(reportDateLayout)]++
		patients[row.PatientID] = struct{}{}

		switch row.Type {
		case entity.AttendanceTypeEvaluation:
			resp.Evaluations++
		case entity.AttendanceTypeEvolution:
			resp.Evolutions++
		}
	}

	resp.DistinctPatients = len(patients)

	for day, count := range perDay {
		resp.PerDay = append(resp.PerDay, dto.DailyCount{Date: day, Count: count})
	}
	sort.Slice(resp.PerDay, func(i, j int) bool {
		return resp.PerDay[i].Date < resp.PerDay[j].Date
	})

	if activeDays := len(perDay); activeDays > 0 {
		resp.AvgPerActiveDay = decimal.NewFromInt(int64(resp.Total)).
			Div(decimal.NewFromInt(int64(activeDays))).
			Round(2)
	}

	return resp
}
