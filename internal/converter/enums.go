package converter

import (
	"errors"
	"fmt"
	"strings"

	"clinic-management-api/internal/domain/entity"
)

// Enum values are stored upper case and travel lower case on the wire. Each
// enum has one explicit bidirectional table; unknown wire values are
// validation errors, never silently passed through.

var ErrUnknownEnumValue = errors.New("unknown enum value")

var attendanceTypes = map[string]entity.AttendanceType{
	"evaluation": entity.AttendanceTypeEvaluation,
	"evolution":  entity.AttendanceTypeEvolution,
}

var paymentMethods = map[string]entity.PaymentMethod{
	"cash":     entity.PaymentMethodCash,
	"card":     entity.PaymentMethodCard,
	"pix":      entity.PaymentMethodPix,
	"transfer": entity.PaymentMethodTransfer,
}

var appointmentStatuses = map[string]entity.AppointmentStatus{
	"waiting":     entity.AppointmentStatusWaiting,
	"confirmed":   entity.AppointmentStatusConfirmed,
	"canceled":    entity.AppointmentStatusCanceled,
	"rescheduled": entity.AppointmentStatusRescheduled,
}

var transactionKinds = map[string]entity.TransactionKind{
	"income":  entity.TransactionKindIncome,
	"expense": entity.TransactionKindExpense,
}

var notificationCategories = map[string]entity.NotificationCategory{
	"system":      entity.NotificationCategorySystem,
	"appointment": entity.NotificationCategoryAppointment,
	"finance":     entity.NotificationCategoryFinance,
}

var notificationStatuses = map[string]entity.NotificationStatus{
	"unread": entity.NotificationStatusUnread,
	"read":   entity.NotificationStatusRead,
}

var notificationPriorities = map[string]entity.NotificationPriority{
	"low":    entity.NotificationPriorityLow,
	"normal": entity.NotificationPriorityNormal,
	"high":   entity.NotificationPriorityHigh,
}

var notificationSendModes = map[string]entity.NotificationSendMode{
	"now":       entity.NotificationSendModeNow,
	"scheduled": entity.NotificationSendModeScheduled,
}

func AttendanceTypeFromWire(s string) (entity.AttendanceType, error) {
	v, ok := attendanceTypes[s]
	if !ok {
		return "", fmt.Errorf("%w: attendance type %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func PaymentMethodFromWire(s string) (entity.PaymentMethod, error) {
	v, ok := paymentMethods[s]
	if !ok {
		return "", fmt.Errorf("%w: payment method %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func AppointmentStatusFromWire(s string) (entity.AppointmentStatus, error) {
	v, ok := appointmentStatuses[s]
	if !ok {
		return "", fmt.Errorf("%w: appointment status %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func TransactionKindFromWire(s string) (entity.TransactionKind, error) {
	v, ok := transactionKinds[s]
	if !ok {
		return "", fmt.Errorf("%w: transaction kind %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func NotificationCategoryFromWire(s string) (entity.NotificationCategory, error) {
	v, ok := notificationCategories[s]
	if !ok {
		return "", fmt.Errorf("%w: notification category %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func NotificationStatusFromWire(s string) (entity.NotificationStatus, error) {
	v, ok := notificationStatuses[s]
	if !ok {
		return "", fmt.Errorf("%w: notification status %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func NotificationPriorityFromWire(s string) (entity.NotificationPriority, error) {
	v, ok := notificationPriorities[s]
	if !ok {
		return "", fmt.Errorf("%w: notification priority %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

func NotificationSendModeFromWire(s string) (entity.NotificationSendMode, error) {
	v, ok := notificationSendModes[s]
	if !ok {
		return "", fmt.Errorf("%w: notification send mode %q", ErrUnknownEnumValue, s)
	}
	return v, nil
}

// EnumToWire lowers any stored enum value to its wire form.
func EnumToWire[T ~string](v T) string {
	return strings.ToLower(string(v))
}
