package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when no token lifetime is configured.
const DefaultTokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalidSignature is returned when the signature does not match.
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	// ErrTokenMalformed is returned when the token cannot be parsed.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenManager issues and verifies signed session tokens. Tokens are
// stateless: validity is determined by signature and expiry alone, never by
// a server-side lookup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager initializes a token manager. An empty secret is a fatal
// configuration error. A zero ttl selects DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue generates a signed JWT for the given user ID.
func (tm *TokenManager) Issue(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	})
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the token's signature and expiry and returns the user ID it
// was issued for. Failures are reported as ErrTokenExpired,
// ErrTokenInvalidSignature or ErrTokenMalformed.
func (tm *TokenManager) Verify(tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		default:
			return 0, ErrTokenInvalidSignature
		}
	}
	if !token.Valid {
		return 0, ErrTokenInvalidSignature
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return userID, nil
}
