package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie the browser sends on every request.
const CookieName = "Authentication"

// SessionCookie wraps a signed token in an HTTP-only, Secure, strict
// same-site cookie scoped to the whole site. MaxAge mirrors the token's own
// expiry so the browser drops the cookie when the token dies.
func SessionCookie(token string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// ExpiredSessionCookie instructs the browser to discard the session cookie.
func ExpiredSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
