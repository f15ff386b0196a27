package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var notificationListOptions = dto.ListQueryOptions{
	DefaultSortBy:    "created_at",
	DefaultSortOrder: "desc",
	SortColumns: map[string]string{
		"priority":   "priority",
		"status":     "status",
		"created_at": "created_at",
	},
}

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

// Create handles notification creation
// @Summary Create a notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications [post]
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEnumValue) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrScheduledAtRequired:
			response.Error(w, http.StatusBadRequest, "scheduled_at is required when send_mode is scheduled", nil)
		case usecase.ErrRecipientNotFound:
			response.NotFound(w, "Recipient not found")
		default:
			response.InternalServerError(w, "Failed to create notification")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Notification created successfully", notification)
}

// List handles listing the logged-in user's notifications
// @Summary List my notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListQuery(r.URL.Query(), notificationListOptions)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	notifications, total, err := h.notificationUsecase.ListMine(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notifications retrieved successfully", notifications, response.NewMeta(q.Page, q.Limit, total))
}

// GetByID handles getting a notification by ID
// @Summary Get notification by ID
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to get notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification retrieved successfully", notification)
}

// MarkRead handles marking a notification as read
// @Summary Mark notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.MarkRead(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		case usecase.ErrNotificationNotOwned:
			response.Forbidden(w, "Notification does not belong to you")
		default:
			response.InternalServerError(w, "Failed to mark notification as read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", notification)
}

// Update handles partial notification update
// @Summary Update a notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body dto.UpdateNotificationRequest true "Update Notification Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id} [put]
func (h *NotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	var req dto.UpdateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEnumValue) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		case usecase.ErrScheduledAtRequired:
			response.Error(w, http.StatusBadRequest, "scheduled_at is required when send_mode is scheduled", nil)
		default:
			response.InternalServerError(w, "Failed to update notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification updated successfully", notification)
}

// Delete handles notification deletion
// @Summary Delete a notification
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to delete notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification deleted successfully", nil)
}
