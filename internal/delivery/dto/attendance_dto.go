package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// AttachmentRequest references an already uploaded blob. Key is the storage
// key returned by the presign endpoint and is required to release the blob
// when the attendance is removed.
type AttachmentRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"gte=0"`
	Type string `json:"type" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
	Key  string `json:"key" validate:"omitempty,max=512"`
}

// FinanceRequest is the optional finance sub-record of an attendance. When
// launch_to_finance is set the usecase mirrors it into a Transaction.
type FinanceRequest struct {
	LaunchToFinance bool            `json:"launch_to_finance"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   *string         `json:"payment_method" validate:"omitempty,oneof=cash card pix transfer"`
	Account         *string         `json:"account" validate:"omitempty,max=100"`
	Paid            bool            `json:"paid"`
	PaidAt          *time.Time      `json:"paid_at"`
}

type CreateAttendanceRequest struct {
	PatientID      uuid.UUID           `json:"patient_id" validate:"required"`
	ProfessionalID uuid.UUID           `json:"professional_id" validate:"required"`
	Type           string              `json:"type" validate:"required,oneof=evaluation evolution"`
	Date           time.Time           `json:"date" validate:"required"`
	ChiefComplaint *string             `json:"chief_complaint"`
	Anamnesis      *string             `json:"anamnesis"`
	Diagnosis      *string             `json:"diagnosis"`
	CIDCode        *string             `json:"cid_code" validate:"omitempty,max=20"`
	Evolution      *string             `json:"evolution"`
	Attachments    []AttachmentRequest `json:"attachments" validate:"omitempty,dive"`
	Finance        *FinanceRequest     `json:"finance"`
}

type UpdateAttendanceRequest struct {
	Date           *time.Time          `json:"date"`
	ChiefComplaint *string             `json:"chief_complaint"`
	Anamnesis      *string             `json:"anamnesis"`
	Diagnosis      *string             `json:"diagnosis"`
	CIDCode        *string             `json:"cid_code" validate:"omitempty,max=20"`
	Evolution      *string             `json:"evolution"`
	Attachments    []AttachmentRequest `json:"attachments" validate:"omitempty,dive"`
}

type PresignAttachmentRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Size int64  `json:"size" validate:"required,gt=0"`
}

// Response DTOs

type AttachmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Key  string `json:"key,omitempty"`
}

type FinanceResponse struct {
	LaunchToFinance bool            `json:"launch_to_finance"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   *string         `json:"payment_method,omitempty"`
	Account         *string         `json:"account,omitempty"`
	Paid            bool            `json:"paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

type AttendanceResponse struct {
	ID             uuid.UUID            `json:"id"`
	PatientID      uuid.UUID            `json:"patient_id"`
	ProfessionalID uuid.UUID            `json:"professional_id"`
	Type           string               `json:"type"`
	Date           time.Time            `json:"date"`
	ChiefComplaint *string              `json:"chief_complaint,omitempty"`
	Anamnesis      *string              `json:"anamnesis,omitempty"`
	Diagnosis      *string              `json:"diagnosis,omitempty"`
	CIDCode        *string              `json:"cid_code,omitempty"`
	Evolution      *string              `json:"evolution,omitempty"`
	Attachments    []AttachmentResponse `json:"attachments,omitempty"`
	Finance        FinanceResponse      `json:"finance"`
	Patient        *PatientResponse     `json:"patient,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type PresignAttachmentResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
	ExpiresIn int64  `json:"expires_in"`
}
