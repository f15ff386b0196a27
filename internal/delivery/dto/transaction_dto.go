package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTransactionRequest struct {
	Kind           string          `json:"kind" validate:"required,oneof=income expense"`
	Category       string          `json:"category" validate:"required,max=100"`
	Description    *string         `json:"description"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod  *string         `json:"payment_method" validate:"omitempty,oneof=cash card pix transfer"`
	Paid           bool            `json:"paid"`
	DueDate        time.Time       `json:"due_date" validate:"required"`
	CompetenceDate *string         `json:"competence_date" validate:"omitempty,datetime=2006-01-02"`
	PaidAt         *time.Time      `json:"paid_at"`
}

type UpdateTransactionRequest struct {
	Kind           *string          `json:"kind" validate:"omitempty,oneof=income expense"`
	Category       *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Description    *string          `json:"description"`
	Amount         *decimal.Decimal `json:"amount"`
	PaymentMethod  *string          `json:"payment_method" validate:"omitempty,oneof=cash card pix transfer"`
	Paid           *bool            `json:"paid"`
	DueDate        *time.Time       `json:"due_date"`
	CompetenceDate *string          `json:"competence_date" validate:"omitempty,datetime=2006-01-02"`
	PaidAt         *time.Time       `json:"paid_at"`
}

// Response DTOs

type TransactionResponse struct {
	ID             uuid.UUID       `json:"id"`
	Kind           string          `json:"kind"`
	Category       string          `json:"category"`
	Description    *string         `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	Paid           bool            `json:"paid"`
	DueDate        time.Time       `json:"due_date"`
	CompetenceDate *string         `json:"competence_date,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	AttendanceID   *uuid.UUID      `json:"attendance_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
