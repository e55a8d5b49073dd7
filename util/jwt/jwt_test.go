package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, secret string, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue(testSecret, 42, "alice", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := ParseAuth("Bearer "+tok, testSecret)
	require.NoError(t, err)
	require.Equal(t, int64(42), id.UserID)
	require.Equal(t, "alice", id.Username)
}

func TestParseAuth_HeaderMissingOrMalformed(t *testing.T) {
	for _, h := range []string{"", "   ", "Basic abc", "justatoken"} {
		_, err := ParseAuth(h, testSecret)
		require.ErrorIs(t, err, ErrMissingHeader, "header %q", h)
	}
}

func TestParseAuth_TokenSegmentMissing(t *testing.T) {
	_, err := ParseAuth("Bearer ", testSecret)
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = ParseAuth("Bearer    ", testSecret)
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestParseAuth_WrongSecret(t *testing.T) {
	tok, err := Issue(testSecret, 7, "bob", 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok, "other-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuth_Expiry(t *testing.T) {
	now := time.Now()

	fresh := signed(t, testSecret, gojwt.MapClaims{
		"sub":      float64(1),
		"username": "alice",
		"iat":      now.Unix(),
		"exp":      now.Add(59 * time.Minute).Unix(),
	})
	id, err := ParseAuth("Bearer "+fresh, testSecret)
	require.NoError(t, err)
	require.Equal(t, int64(1), id.UserID)

	stale := signed(t, testSecret, gojwt.MapClaims{
		"sub":      float64(1),
		"username": "alice",
		"iat":      now.Add(-61 * time.Minute).Unix(),
		"exp":      now.Add(-1 * time.Minute).Unix(),
	})
	_, err = ParseAuth("Bearer "+stale, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuth_MissingSub(t *testing.T) {
	tok := signed(t, testSecret, gojwt.MapClaims{
		"username": "ghost",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	_, err := ParseAuth("Bearer "+tok, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuth_TamperedToken(t *testing.T) {
	tok, err := Issue(testSecret, 9, "mallory", 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok+"x", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
