package dto

import (
	"github.com/shopspring/decimal"
)

// Finance overview report

type DailyFinance struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type CategorySum struct {
	Category string          `json:"category"`
	Kind     string          `json:"kind"`
	Total    decimal.Decimal `json:"total"`
}

type FinanceOverviewResponse struct {
	Start           string          `json:"start"`
	End             string          `json:"end"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	Balance         decimal.Decimal `json:"balance"`
	PerDay          []DailyFinance  `json:"per_day"`
	PerCategory     []CategorySum   `json:"per_category"`
	AvgPerActiveDay decimal.Decimal `json:"avg_per_active_day"`
}

// Patient attendance report

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AttendanceStatsResponse struct {
	Start            string          `json:"start"`
	End              string          `json:"end"`
	Total            int             `json:"total"`
	DistinctPatients int             `json:"distinct_patients"`
	Evaluations      int             `json:"evaluations"`
	Evolutions       int             `json:"evolutions"`
	PerDay           []DailyCount    `json:"per_day"`
	AvgPerActiveDay  decimal.Decimal `json:"avg_per_active_day"`
}
