package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
)

// TokenManager issues and verifies session tokens. End-user tokens and admin
// tokens are signed with disjoint secrets and carry different lifetimes, so a
// token minted for one privilege tier never verifies as the other.
type TokenManager struct {
	userSecret  []byte
	adminSecret []byte
	userTTL     time.Duration
	adminTTL    time.Duration
}

// NewTokenManager builds a manager from the validated auth configuration.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		userSecret:  []byte(cfg.UserSecret),
		adminSecret: []byte(cfg.AdminSecret),
		userTTL:     cfg.UserTokenTTL,
		adminTTL:    cfg.AdminTokenTTL,
	}
}

// Claims describes the session token payload.
type Claims struct {
	SubjectID int64       `json:"subjectId"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TTL returns the token lifetime applicable to the role.
func (tm *TokenManager) TTL(role domain.Role) time.Duration {
	if role.IsAdmin() {
		return tm.adminTTL
	}
	return tm.userTTL
}

func (tm *TokenManager) secretFor(role domain.Role) []byte {
	if role.IsAdmin() {
		return tm.adminSecret
	}
	return tm.userSecret
}

// Issue signs a session token for the subject using the role-appropriate
// secret and lifetime.
func (tm *TokenManager) Issue(subjectID int64, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.TTL(role))
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secretFor(role))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates a raw token in two phases. The payload is first decoded
// WITHOUT signature verification, solely to read the role that selects the
// verification secret; the claims become trustworthy only after the
// signature and expiry check against that secret succeeds. A forged role in
// the unverified payload merely selects a secret the forger does not hold.
func (tm *TokenManager) Verify(raw string) (*Claims, error) {
	peek := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, peek); err != nil {
		return nil, err
	}
	secret := tm.secretFor(peek.Role)

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("unknown role claim")
	}
	return claims, nil
}
