package jwt

import (
	"testing"
	"time"

	"clinic-management-api/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "doctor@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("tokenID is empty")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "doctor@clinic.test" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Errorf("RoleID = %d, want 2", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %v, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	service := newTestService()

	token, _, err := service.GenerateRefreshToken(uuid.New(), "doctor@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error = %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %v, want refresh", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:        "another-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := service.GenerateAccessToken(uuid.New(), "doctor@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := service.GenerateAccessToken(uuid.New(), "doctor@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken error = %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
