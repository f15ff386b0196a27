package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AttendanceToResponse converts an Attendance entity to its wire shape:
// lower-case enums, string decimals, RFC3339 timestamps.
func AttendanceToResponse(attendance *entity.Attendance) *dto.AttendanceResponse {
	if attendance == nil {
		return nil
	}

	resp := &dto.AttendanceResponse{
		ID:             attendance.ID,
		PatientID:      attendance.PatientID,
		ProfessionalID: attendance.ProfessionalID,
		Type:           EnumToWire(attendance.Type),
		Date:           attendance.Date,
		ChiefComplaint: attendance.ChiefComplaint,
		Anamnesis:      attendance.Anamnesis,
		Diagnosis:      attendance.Diagnosis,
		CIDCode:        attendance.CIDCode,
		Evolution:      attendance.Evolution,
		Attachments:    attachmentsToResponses(attendance.Attachments),
		Finance: dto.FinanceResponse{
			LaunchToFinance: attendance.Finance.LaunchToFinance,
			Amount:          attendance.Finance.Amount,
			PaymentMethod:   PaymentMethodToWirePtr(attendance.Finance.PaymentMethod),
			Account:         attendance.Finance.Account,
			Paid:            attendance.Finance.Paid,
			PaidAt:          attendance.Finance.PaidAt,
		},
		CreatedAt: attendance.CreatedAt,
		UpdatedAt: attendance.UpdatedAt,
	}

	if attendance.Patient.ID != uuid.Nil {
		resp.Patient = PatientToResponse(&attendance.Patient)
	}

	return resp
}

// AttendancesToResponses converts a slice of Attendance entities.
func AttendancesToResponses(attendances []entity.Attendance) []dto.AttendanceResponse {
	responses := make([]dto.AttendanceResponse, len(attendances))
	for i, attendance := range attendances {
		responses[i] = *AttendanceToResponse(&attendance)
	}
	return responses
}

// AttendanceFromCreateRequest builds an Attendance entity from a validated
// create payload.
func AttendanceFromCreateRequest(req *dto.CreateAttendanceRequest) (*entity.Attendance, error) {
	attendanceType, err := AttendanceTypeFromWire(req.Type)
	if err != nil {
		return nil, err
	}

	attendance := &entity.Attendance{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Type:           attendanceType,
		Date:           req.Date,
		ChiefComplaint: CollapseOptional(req.ChiefComplaint),
		Anamnesis:      CollapseOptional(req.Anamnesis),
		Diagnosis:      CollapseOptional(req.Diagnosis),
		CIDCode:        CollapseOptional(req.CIDCode),
		Evolution:      CollapseOptional(req.Evolution),
		Attachments:    attachmentsFromRequests(req.Attachments),
	}

	if req.Finance != nil {
		method, err := PaymentMethodFromWirePtr(req.Finance.PaymentMethod)
		if err != nil {
			return nil, err
		}
		attendance.Finance = entity.FinanceRecord{
			LaunchToFinance: req.Finance.LaunchToFinance,
			Amount:          req.Finance.Amount,
			PaymentMethod:   method,
			Account:         CollapseOptional(req.Finance.Account),
			Paid:            req.Finance.Paid,
			PaidAt:          req.Finance.PaidAt,
		}
	}

	return attendance, nil
}

// ApplyAttendanceUpdate copies the provided fields of a partial update onto
// an existing entity. Type and ownership are immutable after create.
func ApplyAttendanceUpdate(attendance *entity.Attendance, req *dto.UpdateAttendanceRequest) {
	if req.Date != nil {
		attendance.Date = *req.Date
	}
	if req.ChiefComplaint != nil {
		attendance.ChiefComplaint = CollapseOptional(req.ChiefComplaint)
	}
	if req.Anamnesis != nil {
		attendance.Anamnesis = CollapseOptional(req.Anamnesis)
	}
	if req.Diagnosis != nil {
		attendance.Diagnosis = CollapseOptional(req.Diagnosis)
	}
	if req.CIDCode != nil {
		attendance.CIDCode = CollapseOptional(req.CIDCode)
	}
	if req.Evolution != nil {
		attendance.Evolution = CollapseOptional(req.Evolution)
	}
	if req.Attachments != nil {
		attendance.Attachments = attachmentsFromRequests(req.Attachments)
	}
}

func attachmentsFromRequests(reqs []dto.AttachmentRequest) entity.Attachments {
	if len(reqs) == 0 {
		return nil
	}
	attachments := make(entity.Attachments, len(reqs))
	for i, req := range reqs {
		attachments[i] = entity.Attachment{
			ID:   req.ID,
			Name: req.Name,
			Size: req.Size,
			Type: req.Type,
			URL:  req.URL,
			Key:  req.Key,
		}
	}
	return attachments
}

func attachmentsToResponses(attachments entity.Attachments) []dto.AttachmentResponse {
	if len(attachments) == 0 {
		return nil
	}
	responses := make([]dto.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = dto.AttachmentResponse{
			ID:   a.ID,
			Name: a.Name,
			Size: a.Size,
			Type: a.Type,
			URL:  a.URL,
			Key:  a.Key,
		}
	}
	return responses
}
