package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its wire shape.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		ProfessionalID: appointment.ProfessionalID,
		ScheduledAt:    appointment.ScheduledAt,
		Status:         EnumToWire(appointment.Status),
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		resp.Patient = PatientToResponse(&appointment.Patient)
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// AppointmentFromCreateRequest builds an Appointment entity from a validated
// create payload. Status defaults to waiting.
func AppointmentFromCreateRequest(req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	status := entity.AppointmentStatusWaiting
	if req.Status != nil {
		parsed, err := AppointmentStatusFromWire(*req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	return &entity.Appointment{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		ScheduledAt:    req.ScheduledAt,
		Status:         status,
		Notes:          CollapseOptional(req.Notes),
	}, nil
}

// ApplyAppointmentUpdate copies the provided fields of a partial update onto
// an existing entity.
func ApplyAppointmentUpdate(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) error {
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		status, err := AppointmentStatusFromWire(*req.Status)
		if err != nil {
			return err
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = CollapseOptional(req.Notes)
	}
	return nil
}
