package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies the access tokens the auth middleware consumes.
// Session issuance itself lives outside this service; the middleware only
// needs to resolve a bearer token into an account id.
type Manager struct {
	secret      []byte
	accessTTL   time.Duration
	signingAlgo *jwt.SigningMethodHMAC
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret:      []byte(secret),
		accessTTL:   24 * time.Hour,
		signingAlgo: jwt.SigningMethodHS256,
	}
}

// GenerateAccessToken issues a token whose subject is the account id.
func (m *Manager) GenerateAccessToken(accountID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
	}
	return jwt.NewWithClaims(m.signingAlgo, claims).SignedString(m.secret)
}

// VerifyAccessToken validates the token and returns the account id it carries.
func (m *Manager) VerifyAccessToken(tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid access token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid access token claims")
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject %q: %w", claims.Subject, err)
	}
	return accountID, nil
}
