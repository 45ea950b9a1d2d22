package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		UserSecret:    "user-secret",
		AdminSecret:   "admin-secret",
		UserTokenTTL:  time.Hour,
		AdminTokenTTL: 15 * time.Minute,
		BcryptCost:    10,
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin} {
		token, expiresAt, err := tm.Issue(42, role)
		if err != nil {
			t.Fatalf("Issue(%s) error = %v", role, err)
		}
		if time.Until(expiresAt) <= 0 {
			t.Errorf("Issue(%s) returned past expiry %v", role, expiresAt)
		}

		claims, err := tm.Verify(token)
		if err != nil {
			t.Fatalf("Verify(%s) error = %v", role, err)
		}
		if claims.SubjectID != 42 {
			t.Errorf("SubjectID = %d, want 42", claims.SubjectID)
		}
		if claims.Role != role {
			t.Errorf("Role = %s, want %s", claims.Role, role)
		}
	}
}

func TestTTLPerRole(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	if got := tm.TTL(domain.RoleUser); got != time.Hour {
		t.Errorf("TTL(USER) = %v, want 1h", got)
	}
	if got := tm.TTL(domain.RoleAdmin); got != 15*time.Minute {
		t.Errorf("TTL(ADMIN) = %v, want 15m", got)
	}
	if got := tm.TTL(domain.RoleSuperAdmin); got != 15*time.Minute {
		t.Errorf("TTL(SUPERADMIN) = %v, want 15m", got)
	}
}

// A token claiming ADMIN but signed with the user secret must be rejected:
// the claimed role selects the admin secret for verification, and the
// signature cannot match it.
func TestVerifyRejectsForgedRole(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	claims := &Claims{
		SubjectID: 7,
		Role:      domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("user-secret"))
	if err != nil {
		t.Fatalf("signing forged token: %v", err)
	}

	if _, err := tm.Verify(forged); err == nil {
		t.Fatal("Verify accepted a token claiming ADMIN signed with the user secret")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	other := NewTokenManager(config.AuthConfig{
		UserSecret:    "another-user-secret",
		AdminSecret:   "another-admin-secret",
		UserTokenTTL:  time.Hour,
		AdminTokenTTL: time.Hour,
	})
	token, _, err := other.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Fatal("Verify accepted a token signed with a foreign secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.UserTokenTTL = -time.Minute
	tm := NewTokenManager(cfg)

	token, _, err := tm.Issue(5, domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Fatal("Verify accepted an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Verify(raw); err == nil {
			t.Errorf("Verify(%q) succeeded, want error", raw)
		}
	}
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	claims := &Claims{
		SubjectID: 7,
		Role:      domain.Role("ROOT"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// unknown roles verify against the user secret
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("user-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Fatal("Verify accepted a token with an unknown role claim")
	}
}
