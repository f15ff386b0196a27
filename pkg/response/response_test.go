package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first of many", page: 1, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, limit: 10, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "exact fit", page: 2, limit: 10, total: 20, totalPages: 2, hasNext: false, hasPrev: true},
		{name: "empty result", page: 1, limit: 10, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", meta.HasNext, tt.hasNext)
			}
			if meta.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", meta.HasPrev, tt.hasPrev)
			}
		})
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Phone already registered")

	if rec.Code != 409 {
		t.Errorf("status = %d, want 409", rec.Code)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Success {
		t.Error("Success = true, want false")
	}
	if body.Message != "Phone already registered" {
		t.Errorf("Message = %q", body.Message)
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, 200, "Patients retrieved successfully", []string{}, NewMeta(1, 10, 0))

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Success {
		t.Error("Success = false, want true")
	}
	if body.Meta == nil || body.Meta.Page != 1 {
		t.Errorf("Meta = %+v", body.Meta)
	}
}
