package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus drives the calendar and the status board.
type AppointmentStatus string

const (
	AppointmentStatusWaiting     AppointmentStatus = "WAITING"
	AppointmentStatusConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentStatusCanceled    AppointmentStatus = "CANCELED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
)

// Appointment is a scheduled visit for a patient with a professional.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"professional_id"`
	ScheduledAt    time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'WAITING';index" json:"status"`
	Notes          *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional User    `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
