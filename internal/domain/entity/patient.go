package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person receiving care at the clinic.
// Phone uniqueness is enforced at the application layer (a lookup before
// insert/update) in addition to the unique index, so the API can answer with
// a conflict instead of a raw constraint violation.
type Patient struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Email     *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	CPF       *string    `gorm:"type:varchar(14)" json:"cpf,omitempty"`
	RG        *string    `gorm:"type:varchar(20)" json:"rg,omitempty"`
	Street    *string    `gorm:"type:varchar(255)" json:"street,omitempty"`
	Number    *string    `gorm:"type:varchar(20)" json:"number,omitempty"`
	City      *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State     *string    `gorm:"type:varchar(50)" json:"state,omitempty"`
	ZipCode   *string    `gorm:"type:varchar(15)" json:"zip_code,omitempty"`
	Notes     *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment    `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Attendances  []Attendance     `gorm:"foreignKey:PatientID" json:"attendances,omitempty"`
	History      []MedicalHistory `gorm:"foreignKey:PatientID" json:"history,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
