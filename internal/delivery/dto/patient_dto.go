package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Phone     string  `json:"phone" validate:"required,min=10,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	CPF       *string `json:"cpf" validate:"omitempty,max=14"`
	RG        *string `json:"rg" validate:"omitempty,max=20"`
	Street    *string `json:"street" validate:"omitempty,max=255"`
	Number    *string `json:"number" validate:"omitempty,max=20"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	State     *string `json:"state" validate:"omitempty,max=50"`
	ZipCode   *string `json:"zip_code" validate:"omitempty,max=15"`
	Notes     *string `json:"notes"`
}

// UpdatePatientRequest has every field optional; a provided field still obeys
// the create-level constraint.
type UpdatePatientRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,min=10,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	CPF       *string `json:"cpf" validate:"omitempty,max=14"`
	RG        *string `json:"rg" validate:"omitempty,max=20"`
	Street    *string `json:"street" validate:"omitempty,max=255"`
	Number    *string `json:"number" validate:"omitempty,max=20"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	State     *string `json:"state" validate:"omitempty,max=50"`
	ZipCode   *string `json:"zip_code" validate:"omitempty,max=15"`
	Notes     *string `json:"notes"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	BirthDate *string   `json:"birth_date,omitempty"`
	CPF       *string   `json:"cpf,omitempty"`
	RG        *string   `json:"rg,omitempty"`
	Street    *string   `json:"street,omitempty"`
	Number    *string   `json:"number,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	ZipCode   *string   `json:"zip_code,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
