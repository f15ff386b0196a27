package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// TransactionToResponse converts a Transaction entity to its wire shape.
func TransactionToResponse(transaction *entity.Transaction) *dto.TransactionResponse {
	if transaction == nil {
		return nil
	}

	return &dto.TransactionResponse{
		ID:             transaction.ID,
		Kind:           EnumToWire(transaction.Kind),
		Category:       transaction.Category,
		Description:    transaction.Description,
		Amount:         transaction.Amount,
		PaymentMethod:  PaymentMethodToWirePtr(transaction.PaymentMethod),
		Paid:           transaction.Paid,
		DueDate:        transaction.DueDate,
		CompetenceDate: FormatDate(transaction.CompetenceDate),
		PaidAt:         transaction.PaidAt,
		AttendanceID:   transaction.AttendanceID,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}

// TransactionsToResponses converts a slice of Transaction entities.
func TransactionsToResponses(transactions []entity.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = *TransactionToResponse(&transaction)
	}
	return responses
}

// TransactionFromCreateRequest builds a Transaction entity from a validated
// create payload.
func TransactionFromCreateRequest(req *dto.CreateTransactionRequest) (*entity.Transaction, error) {
	kind, err := TransactionKindFromWire(req.Kind)
	if err != nil {
		return nil, err
	}

	method, err := PaymentMethodFromWirePtr(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	competence, err := ParseDate(req.CompetenceDate)
	if err != nil {
		return nil, err
	}

	return &entity.Transaction{
		Kind:           kind,
		Category:       req.Category,
		Description:    CollapseOptional(req.Description),
		Amount:         req.Amount,
		PaymentMethod:  method,
		Paid:           req.Paid,
		DueDate:        req.DueDate,
		CompetenceDate: competence,
		PaidAt:         req.PaidAt,
	}, nil
}

// ApplyTransactionUpdate copies the provided fields of a partial update onto
// an existing entity.
func ApplyTransactionUpdate(transaction *entity.Transaction, req *dto.UpdateTransactionRequest) error {
	if req.Kind != nil {
		kind, err := TransactionKindFromWire(*req.Kind)
		if err != nil {
			return err
		}
		transaction.Kind = kind
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Description != nil {
		transaction.Description = CollapseOptional(req.Description)
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		method, err := PaymentMethodFromWirePtr(req.PaymentMethod)
		if err != nil {
			return err
		}
		transaction.PaymentMethod = method
	}
	if req.Paid != nil {
		transaction.Paid = *req.Paid
	}
	if req.DueDate != nil {
		transaction.DueDate = *req.DueDate
	}
	if req.CompetenceDate != nil {
		competence, err := ParseDate(req.CompetenceDate)
		if err != nil {
			return err
		}
		transaction.CompetenceDate = competence
	}
	if req.PaidAt != nil {
		transaction.PaidAt = req.PaidAt
	}
	return nil
}
