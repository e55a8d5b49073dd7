package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingHeader = errors.New("authorization header missing or malformed")
	ErrMissingToken  = errors.New("token not found")
	ErrInvalidToken  = errors.New("invalid token")
)

// Identity is the per-request authenticated caller, derived from a
// verified token. It is never persisted.
type Identity struct {
	UserID   int64
	Username string
}

func Issue(secret string, userID int64, username string, ttlHours int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAuth verifies a raw Authorization header value and extracts the
// caller identity. Verification is strictly two-phase: signature and
// expiry first, claim extraction after. No claim is trusted before the
// token is valid.
func ParseAuth(authHeader, secret string) (*Identity, error) {
	raw := strings.TrimSpace(authHeader)
	if raw == "" || !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return nil, ErrMissingHeader
	}
	tokenStr := strings.TrimSpace(raw[7:])
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Expiry is re-checked here rather than trusted to the parse step.
	exp, ok := mc["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		return nil, ErrInvalidToken
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := mc["username"].(string)

	return &Identity{UserID: int64(sub), Username: username}, nil
}
