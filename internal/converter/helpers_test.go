package converter

import (
	"testing"
	"time"
)

func TestCollapseOptional(t *testing.T) {
	if got := CollapseOptional(nil); got != nil {
		t.Errorf("CollapseOptional(nil) = %v, want nil", got)
	}

	empty := ""
	if got := CollapseOptional(&empty); got != nil {
		t.Errorf("CollapseOptional(\"\") = %v, want nil", got)
	}

	value := "some notes"
	if got := CollapseOptional(&value); got == nil || *got != value {
		t.Errorf("CollapseOptional(%q) = %v, want %q", value, got, value)
	}
}

func TestParseDate(t *testing.T) {
	if got, err := ParseDate(nil); err != nil || got != nil {
		t.Errorf("ParseDate(nil) = %v, %v, want nil, nil", got, err)
	}

	empty := ""
	if got, err := ParseDate(&empty); err != nil || got != nil {
		t.Errorf("ParseDate(\"\") = %v, %v, want nil, nil", got, err)
	}

	valid := "1990-05-17"
	got, err := ParseDate(&valid)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", valid, err)
	}
	want := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(%q) = %v, want %v", valid, got, want)
	}

	invalid := "17/05/1990"
	if _, err := ParseDate(&invalid); err == nil {
		t.Errorf("ParseDate(%q) expected error", invalid)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	input := "2026-01-31"
	parsed, err := ParseDate(&input)
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}

	got := FormatDate(parsed)
	if got == nil || *got != input {
		t.Errorf("FormatDate(ParseDate(%q)) = %v, want %q", input, got, input)
	}

	if got := FormatDate(nil); got != nil {
		t.Errorf("FormatDate(nil) = %v, want nil", got)
	}
}
