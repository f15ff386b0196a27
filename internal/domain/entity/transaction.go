package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind separates income from expense ledger lines.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindExpense TransactionKind = "EXPENSE"
)

// Transaction is one financial ledger line, optionally mirrored from a
// finance-enabled attendance (AttendanceID set by the finance sync).
type Transaction struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kind           TransactionKind `gorm:"type:varchar(10);not null;index" json:"kind"`
	Category       string          `gorm:"type:varchar(100);not null" json:"category"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod  *PaymentMethod  `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	Paid           bool            `gorm:"not null;default:false;index" json:"paid"`
	DueDate        time.Time       `gorm:"not null;index" json:"due_date"`
	CompetenceDate *time.Time      `gorm:"type:date" json:"competence_date,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	AttendanceID   *uuid.UUID      `gorm:"type:uuid;index" json:"attendance_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Attendance *Attendance `gorm:"foreignKey:AttendanceID" json:"attendance,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
