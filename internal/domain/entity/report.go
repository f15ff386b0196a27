package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionReportRow is the projection used by the finance overview report.
type TransactionReportRow struct {
	Day      time.Time
	Kind     TransactionKind
	Category string
	Amount   decimal.Decimal
}

// AttendanceReportRow is the projection used by the patient attendance report.
type AttendanceReportRow struct {
	Day       time.Time
	Type      AttendanceType
	PatientID uuid.UUID
}
