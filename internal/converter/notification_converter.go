package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationToResponse converts a Notification entity to its wire shape.
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		SenderID:    notification.SenderID,
		Title:       notification.Title,
		Message:     notification.Message,
		Category:    EnumToWire(notification.Category),
		Status:      EnumToWire(notification.Status),
		Priority:    EnumToWire(notification.Priority),
		SendMode:    EnumToWire(notification.SendMode),
		ScheduledAt: notification.ScheduledAt,
		CreatedAt:   notification.CreatedAt,
		UpdatedAt:   notification.UpdatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities.
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *NotificationToResponse(&notification)
	}
	return responses
}

// NotificationFromCreateRequest builds a Notification entity from a validated
// create payload. Priority defaults to normal, send mode to now.
func NotificationFromCreateRequest(req *dto.CreateNotificationRequest, senderID uuid.UUID) (*entity.Notification, error) {
	category, err := NotificationCategoryFromWire(req.Category)
	if err != nil {
		return nil, err
	}

	priority := entity.NotificationPriorityNormal
	if req.Priority != nil {
		priority, err = NotificationPriorityFromWire(*req.Priority)
		if err != nil {
			return nil, err
		}
	}

	sendMode := entity.NotificationSendModeNow
	if req.SendMode != nil {
		sendMode, err = NotificationSendModeFromWire(*req.SendMode)
		if err != nil {
			return nil, err
		}
	}

	notification := &entity.Notification{
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Message:     req.Message,
		Category:    category,
		Status:      entity.NotificationStatusUnread,
		Priority:    priority,
		SendMode:    sendMode,
		ScheduledAt: req.ScheduledAt,
	}
	if senderID != uuid.Nil {
		notification.SenderID = &senderID
	}

	return notification, nil
}

// ApplyNotificationUpdate copies the provided fields of a partial update onto
// an existing entity.
func ApplyNotificationUpdate(notification *entity.Notification, req *dto.UpdateNotificationRequest) error {
	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Message != nil {
		notification.Message = *req.Message
	}
	if req.Category != nil {
		category, err := NotificationCategoryFromWire(*req.Category)
		if err != nil {
			return err
		}
		notification.Category = category
	}
	if req.Priority != nil {
		priority, err := NotificationPriorityFromWire(*req.Priority)
		if err != nil {
			return err
		}
		notification.Priority = priority
	}
	if req.SendMode != nil {
		sendMode, err := NotificationSendModeFromWire(*req.SendMode)
		if err != nil {
			return err
		}
		notification.SendMode = sendMode
	}
	if req.ScheduledAt != nil {
		notification.ScheduledAt = req.ScheduledAt
	}
	return nil
}
