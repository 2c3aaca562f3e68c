package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "predial-gateway",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()
	tenantID := uuid.New()
	roles := []string{RoleAdmin, RolePropertyManager}

	tokenString, err := svc.GenerateToken(userID, tenantID, roles)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if tokenString == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.TenantID != tenantID {
		t.Errorf("TenantID = %v, want %v", claims.TenantID, tenantID)
	}
	if len(claims.Roles) != 2 {
		t.Fatalf("Roles length = %d, want 2", len(claims.Roles))
	}
	if claims.Issuer != "predial-gateway" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "predial-gateway")
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	if _, err := NewJWTService(JWTConfig{Issuer: "predial-gateway"}); err == nil {
		t.Fatal("NewJWTService() expected error without key material, got nil")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "predial-gateway",
		Expiration: -1 * time.Hour, // already expired
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	tokenString, err := svc.GenerateToken(uuid.New(), uuid.New(), []string{RoleBorrower})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() expected error for expired token, got nil")
	}
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	svc1, err := NewJWTService(JWTConfig{Secret: "secret-one", Issuer: "predial-gateway", Expiration: 15 * time.Minute})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	svc2, err := NewJWTService(JWTConfig{Secret: "secret-two", Issuer: "predial-gateway", Expiration: 15 * time.Minute})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	tokenString, err := svc1.GenerateToken(uuid.New(), uuid.New(), []string{RoleBorrower})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc2.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() expected error for invalid signature, got nil")
	}
}

func TestHasRole(t *testing.T) {
	claims := Claims{Roles: []string{RoleAdmin, RoleAgent}}

	if !claims.HasRole(RoleAdmin) {
		t.Error("HasRole(RoleAdmin) = false, want true")
	}
	if claims.HasRole(RoleBorrower) {
		t.Error("HasRole(RoleBorrower) = true, want false")
	}
}

func TestClaimsFromContext(t *testing.T) {
	if _, ok := ClaimsFromContext(context.Background()); ok {
		t.Error("expected no claims in empty context")
	}

	want := &Claims{Roles: []string{RoleAPIClient}}
	ctx := ContextWithClaims(context.Background(), want)

	got, ok := ClaimsFromContext(ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if got != want {
		t.Error("ClaimsFromContext returned a different claims pointer")
	}
}
