package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/payments"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

// Checkout handles starting a checkout session
// @Summary Start a checkout session
// @Description Create a processor-hosted checkout page for a plan
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /billing/checkout [post]
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.billingUsecase.CreateCheckout(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create checkout session")
		return
	}

	response.Success(w, http.StatusOK, "Checkout session created successfully", session)
}

// Subscription handles fetching the current subscription
// @Summary Get current subscription
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/subscription [get]
func (h *BillingHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.billingUsecase.GetSubscription(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSubscription), errors.Is(err, payments.ErrSubscriptionNotFound):
			response.NotFound(w, "No active subscription")
		default:
			response.InternalServerError(w, "Failed to get subscription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Subscription retrieved successfully", sub)
}

// Invoices handles listing invoices
// @Summary List invoices
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/invoices [get]
func (h *BillingHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.billingUsecase.ListInvoices(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSubscription), errors.Is(err, payments.ErrCustomerNotFound):
			response.NotFound(w, "No billing account")
		default:
			response.InternalServerError(w, "Failed to list invoices")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

// Cancel handles subscription cancellation
// @Summary Cancel the current subscription
// @Description Cancel at period end and return the updated summary
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/cancel [post]
func (h *BillingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sub, err := h.billingUsecase.CancelSubscription(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSubscription), errors.Is(err, payments.ErrSubscriptionNotFound):
			response.NotFound(w, "No active subscription")
		default:
			response.InternalServerError(w, "Failed to cancel subscription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Subscription canceled successfully", sub)
}
