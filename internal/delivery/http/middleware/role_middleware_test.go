package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireClinical(t *testing.T) {
	tests := []struct {
		name   string
		roleID int
		want   int
	}{
		{name: "admin allowed", roleID: entity.RoleIDAdmin, want: http.StatusOK},
		{name: "professional allowed", roleID: entity.RoleIDProfessional, want: http.StatusOK},
		{name: "unknown role forbidden", roleID: 99, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireClinical(okHandler()).ServeHTTP(rec, requestWithRole(tt.roleID))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler()).ServeHTTP(rec, requestWithRole(entity.RoleIDProfessional))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleWithoutContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	RequireClinical(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
