package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
)

func newGuardedApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	mw := NewMiddleware(tm, zap.NewNop())
	app.Use(mw.Authenticate)

	echo := func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"subjectId": principal.SubjectID, "role": principal.Role})
	}
	app.Get("/user-only", RequireAuthenticated(), echo)
	app.Get("/admin-only", RequireAdmin(), echo)
	app.Get("/superadmin-only", RequireSuperAdmin(), echo)
	return app
}

func requestWithToken(t *testing.T, tm *TokenManager, target string, subjectID int64, role domain.Role) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if role != "" {
		token, _, err := tm.Issue(subjectID, role)
		if err != nil {
			t.Fatalf("Issue error = %v", err)
		}
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return req
}

func TestGuards(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGuardedApp(t, tm)

	tests := []struct {
		name       string
		target     string
		role       domain.Role
		wantStatus int
	}{
		{name: "anonymous denied", target: "/user-only", role: "", wantStatus: http.StatusUnauthorized},
		{name: "user allowed", target: "/user-only", role: domain.RoleUser, wantStatus: http.StatusOK},
		{name: "user denied admin route", target: "/admin-only", role: domain.RoleUser, wantStatus: http.StatusForbidden},
		{name: "admin allowed", target: "/admin-only", role: domain.RoleAdmin, wantStatus: http.StatusOK},
		{name: "superadmin allowed admin route", target: "/admin-only", role: domain.RoleSuperAdmin, wantStatus: http.StatusOK},
		{name: "admin denied superadmin route", target: "/superadmin-only", role: domain.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "superadmin allowed", target: "/superadmin-only", role: domain.RoleSuperAdmin, wantStatus: http.StatusOK},
		{name: "anonymous denied superadmin route", target: "/superadmin-only", role: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(requestWithToken(t, tm, tt.target, 1, tt.role))
			if err != nil {
				t.Fatalf("app.Test error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

// A cookie carrying junk must leave the request anonymous rather than fail it.
func TestAuthenticateIgnoresBadToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGuardedApp(t, tm)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	cookie := SessionCookie("token-value", 15*time.Minute)

	if cookie.Name != CookieName {
		t.Errorf("Name = %q, want %q", cookie.Name, CookieName)
	}
	if !cookie.HTTPOnly {
		t.Error("cookie is not HTTPOnly")
	}
	if !cookie.Secure {
		t.Error("cookie is not Secure")
	}
	if cookie.SameSite != fiber.CookieSameSiteStrictMode {
		t.Errorf("SameSite = %q, want strict", cookie.SameSite)
	}
	if cookie.MaxAge != 900 {
		t.Errorf("MaxAge = %d, want 900", cookie.MaxAge)
	}

	expired := ExpiredSessionCookie()
	if expired.MaxAge >= 0 && expired.Expires.IsZero() {
		t.Error("expired cookie does not expire")
	}
}
