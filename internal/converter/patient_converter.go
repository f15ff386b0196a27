package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its wire shape.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Phone:     patient.Phone,
		Email:     patient.Email,
		BirthDate: FormatDate(patient.BirthDate),
		CPF:       patient.CPF,
		RG:        patient.RG,
		Street:    patient.Street,
		Number:    patient.Number,
		City:      patient.City,
		State:     patient.State,
		ZipCode:   patient.ZipCode,
		Notes:     patient.Notes,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities.
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}

// PatientFromCreateRequest builds a Patient entity from a validated create
// payload. Optional empty strings collapse to NULL.
func PatientFromCreateRequest(req *dto.CreatePatientRequest) (*entity.Patient, error) {
	birthDate, err := ParseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	return &entity.Patient{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     CollapseOptional(req.Email),
		BirthDate: birthDate,
		CPF:       CollapseOptional(req.CPF),
		RG:        CollapseOptional(req.RG),
		Street:    CollapseOptional(req.Street),
		Number:    CollapseOptional(req.Number),
		City:      CollapseOptional(req.City),
		State:     CollapseOptional(req.State),
		ZipCode:   CollapseOptional(req.ZipCode),
		Notes:     CollapseOptional(req.Notes),
	}, nil
}

// ApplyPatientUpdate copies the provided fields of a partial update onto an
// existing entity; omitted fields are untouched.
func ApplyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) error {
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = CollapseOptional(req.Email)
	}
	if req.BirthDate != nil {
		birthDate, err := ParseDate(req.BirthDate)
		if err != nil {
			return err
		}
		patient.BirthDate = birthDate
	}
	if req.CPF != nil {
		patient.CPF = CollapseOptional(req.CPF)
	}
	if req.RG != nil {
		patient.RG = CollapseOptional(req.RG)
	}
	if req.Street != nil {
		patient.Street = CollapseOptional(req.Street)
	}
	if req.Number != nil {
		patient.Number = CollapseOptional(req.Number)
	}
	if req.City != nil {
		patient.City = CollapseOptional(req.City)
	}
	if req.State != nil {
		patient.State = CollapseOptional(req.State)
	}
	if req.ZipCode != nil {
		patient.ZipCode = CollapseOptional(req.ZipCode)
	}
	if req.Notes != nil {
		patient.Notes = CollapseOptional(req.Notes)
	}
	return nil
}
