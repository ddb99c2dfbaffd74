package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

func fixedIssuer(secret string, at time.Time) *TokenIssuer {
	ti := NewTokenIssuer(secret)
	ti.now = func() time.Time { return at }
	return ti
}

func TestIssueClaimShape(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ti := fixedIssuer("test-secret", issuedAt)

	token, exp, err := ti.Issue(IdentityClaims{Sub: "c-1", Role: domain.RoleCustomer, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(7*24*time.Hour), exp)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(header))

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))

	assert.Equal(t, map[string]any{
		"sub":      "c-1",
		"role":     "customer",
		"username": "alice",
		"iat":      float64(issuedAt.Unix()),
		"exp":      float64(issuedAt.Add(TokenLifetime).Unix()),
	}, claims)
}

func TestIssueWithoutSecret(t *testing.T) {
	_, _, err := NewTokenIssuer("").Issue(IdentityClaims{Sub: "a-1", Role: domain.RoleAdmin, Username: "bob"})
	assert.ErrorIs(t, err, ErrSigningUnavailable)

	_, err = NewTokenIssuer("").Parse("anything")
	assert.ErrorIs(t, err, ErrSigningUnavailable)
}

func TestParseRoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	token, _, err := ti.Issue(IdentityClaims{Sub: "a-1", Role: domain.RoleAdmin, Username: "bob"})
	require.NoError(t, err)

	claims, err := ti.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a-1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "bob", claims.Username)
}

func TestParseRejectsExpiredAndForeignTokens(t *testing.T) {
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	old := fixedIssuer("test-secret", issuedAt)
	token, _, err := old.Issue(IdentityClaims{Sub: "c-1", Role: domain.RoleCustomer, Username: "alice"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	fresh, _, err := NewTokenIssuer("other-secret").Issue(IdentityClaims{Sub: "c-1", Role: domain.RoleCustomer, Username: "alice"})
	require.NoError(t, err)
	_, err = NewTokenIssuer("test-secret").Parse(fresh)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{Role: domain.RoleAdmin, Username: "mallory", RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Parse(token)
	assert.Error(t, err)
}
