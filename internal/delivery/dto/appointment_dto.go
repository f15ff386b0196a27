package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" validate:"required"`
	Status         *string   `json:"status" validate:"omitempty,oneof=waiting confirmed canceled rescheduled"`
	Notes          *string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status" validate:"omitempty,oneof=waiting confirmed canceled rescheduled"`
	Notes       *string    `json:"notes"`
}

// UpdateAppointmentStatusRequest backs the status-board drag-and-drop flow.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=waiting confirmed canceled rescheduled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID        `json:"id"`
	PatientID      uuid.UUID        `json:"patient_id"`
	ProfessionalID uuid.UUID        `json:"professional_id"`
	ScheduledAt    time.Time        `json:"scheduled_at"`
	Status         string           `json:"status"`
	Notes          *string          `json:"notes,omitempty"`
	Patient        *PatientResponse `json:"patient,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
