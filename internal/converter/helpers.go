package converter

import (
	"time"

	"clinic-management-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CollapseOptional maps empty-string input to nil so optional text columns
// store NULL instead of "".
func CollapseOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// FormatDate renders a date-only column for the wire.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses a wire-level YYYY-MM-DD value. The DTO layer has already
// validated the format, so errors here are treated as validation errors too.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// PaymentMethodToWirePtr lowers an optional stored payment method.
func PaymentMethodToWirePtr(m *entity.PaymentMethod) *string {
	if m == nil {
		return nil
	}
	s := EnumToWire(*m)
	return &s
}

// PaymentMethodFromWirePtr raises an optional wire payment method.
func PaymentMethodFromWirePtr(s *string) (*entity.PaymentMethod, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	m, err := PaymentMethodFromWire(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
