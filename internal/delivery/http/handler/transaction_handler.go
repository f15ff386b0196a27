package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var transactionListOptions = dto.ListQueryOptions{
	DefaultSortBy:    "due_date",
	DefaultSortOrder: "desc",
	SortColumns: map[string]string{
		"due_date":   "due_date",
		"amount":     "amount",
		"category":   "category",
		"created_at": "created_at",
	},
}

type TransactionHandler struct {
	transactionUsecase usecase.TransactionUsecase
	validator          *validator.CustomValidator
}

func NewTransactionHandler(transactionUsecase usecase.TransactionUsecase, validator *validator.CustomValidator) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
		validator:          validator,
	}
}

// Create handles transaction creation
// @Summary Create a transaction
// @Description Create an income or expense ledger line
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.transactionUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEnumValue) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrAmountNotPositive:
			response.Error(w, http.StatusBadRequest, "Amount must be greater than zero", nil)
		default:
			response.InternalServerError(w, "Failed to create transaction")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transaction created successfully", transaction)
}

// List handles listing transactions
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param kind query string false "Filter by kind (income, expense)"
// @Param paid query bool false "Filter by paid flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListQuery(r.URL.Query(), transactionListOptions)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := &entity.TransactionFilter{}
	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind, err := converter.TransactionKindFromWire(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid transaction kind filter", nil)
			return
		}
		filter.Kind = &kind
	}
	if raw := r.URL.Query().Get("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid paid filter", nil)
			return
		}
		filter.Paid = &paid
	}

	transactions, total, err := h.transactionUsecase.List(r.Context(), q, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list transactions")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Transactions retrieved successfully", transactions, response.NewMeta(q.Page, q.Limit, total))
}

// GetByID handles getting a transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transaction ID", nil)
		return
	}

	transaction, err := h.transactionUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTransactionNotFound:
			response.NotFound(w, "Transaction not found")
		default:
			response.InternalServerError(w, "Failed to get transaction")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transaction retrieved successfully", transaction)
}

// Update handles partial transaction update
// @Summary Update a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Update Transaction Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transaction ID", nil)
		return
	}

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.transactionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEnumValue) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrTransactionNotFound:
			response.NotFound(w, "Transaction not found")
		case usecase.ErrAmountNotPositive:
			response.Error(w, http.StatusBadRequest, "Amount must be greater than zero", nil)
		default:
			response.InternalServerError(w, "Failed to update transaction")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transaction updated successfully", transaction)
}

// Delete handles transaction deletion
// @Summary Delete a transaction
// @Description Delete a ledger line not mirrored from an attendance
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transaction ID", nil)
		return
	}

	if err := h.transactionUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTransactionNotFound:
			response.NotFound(w, "Transaction not found")
		case usecase.ErrTransactionHasMirror:
			response.Conflict(w, "Transaction is linked to an attendance and cannot be deleted directly")
		default:
			response.InternalServerError(w, "Failed to delete transaction")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transaction deleted successfully", nil)
}
