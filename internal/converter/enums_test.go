package converter

import (
	"errors"
	"testing"

	"clinic-management-api/internal/domain/entity"
)

func TestAttendanceTypeFromWire(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    entity.AttendanceType
		wantErr bool
	}{
		{name: "evaluation", input: "evaluation", want: entity.AttendanceTypeEvaluation},
		{name: "evolution", input: "evolution", want: entity.AttendanceTypeEvolution},
		{name: "upper case rejected", input: "EVALUATION", wantErr: true},
		{name: "unknown value", input: "consultation", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AttendanceTypeFromWire(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AttendanceTypeFromWire(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrUnknownEnumValue) {
					t.Errorf("AttendanceTypeFromWire(%q) error = %v, want ErrUnknownEnumValue", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AttendanceTypeFromWire(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("AttendanceTypeFromWire(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaymentMethodFromWire(t *testing.T) {
	for wire, want := range map[string]entity.PaymentMethod{
		"cash":     entity.PaymentMethodCash,
		"card":     entity.PaymentMethodCard,
		"pix":      entity.PaymentMethodPix,
		"transfer": entity.PaymentMethodTransfer,
	} {
		got, err := PaymentMethodFromWire(wire)
		if err != nil {
			t.Fatalf("PaymentMethodFromWire(%q) error = %v", wire, err)
		}
		if got != want {
			t.Errorf("PaymentMethodFromWire(%q) = %v, want %v", wire, got, want)
		}
	}

	if _, err := PaymentMethodFromWire("check"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("PaymentMethodFromWire(check) error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestAppointmentStatusFromWire(t *testing.T) {
	got, err := AppointmentStatusFromWire("rescheduled")
	if err != nil {
		t.Fatalf("AppointmentStatusFromWire error = %v", err)
	}
	if got != entity.AppointmentStatusRescheduled {
		t.Errorf("AppointmentStatusFromWire(rescheduled) = %v", got)
	}

	if _, err := AppointmentStatusFromWire("done"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("AppointmentStatusFromWire(done) error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestTransactionKindFromWire(t *testing.T) {
	if got, err := TransactionKindFromWire("income"); err != nil || got != entity.TransactionKindIncome {
		t.Errorf("TransactionKindFromWire(income) = %v, %v", got, err)
	}
	if got, err := TransactionKindFromWire("expense"); err != nil || got != entity.TransactionKindExpense {
		t.Errorf("TransactionKindFromWire(expense) = %v, %v", got, err)
	}
	if _, err := TransactionKindFromWire("refund"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("TransactionKindFromWire(refund) error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestNotificationEnumsFromWire(t *testing.T) {
	if got, err := NotificationCategoryFromWire("appointment"); err != nil || got != entity.NotificationCategoryAppointment {
		t.Errorf("NotificationCategoryFromWire(appointment) = %v, %v", got, err)
	}
	if got, err := NotificationStatusFromWire("read"); err != nil || got != entity.NotificationStatusRead {
		t.Errorf("NotificationStatusFromWire(read) = %v, %v", got, err)
	}
	if got, err := NotificationPriorityFromWire("high"); err != nil || got != entity.NotificationPriorityHigh {
		t.Errorf("NotificationPriorityFromWire(high) = %v, %v", got, err)
	}
	if got, err := NotificationSendModeFromWire("scheduled"); err != nil || got != entity.NotificationSendModeScheduled {
		t.Errorf("NotificationSendModeFromWire(scheduled) = %v, %v", got, err)
	}
	if _, err := NotificationPriorityFromWire("urgent"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("NotificationPriorityFromWire(urgent) error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestEnumToWire(t *testing.T) {
	if got := EnumToWire(entity.AttendanceTypeEvaluation); got != "evaluation" {
		t.Errorf("EnumToWire(EVALUATION) = %q, want evaluation", got)
	}
	if got := EnumToWire(entity.TransactionKindExpense); got != "expense" {
		t.Errorf("EnumToWire(EXPENSE) = %q, want expense", got)
	}
}
