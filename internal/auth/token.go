package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

// TokenLifetime is the fixed validity window of every issued token.
const TokenLifetime = 7 * 24 * time.Hour

// ErrSigningUnavailable is returned when no signing secret is configured.
var ErrSigningUnavailable = errors.New("token signing secret not configured")

// IdentityClaims is the subject triple carried by a token.
type IdentityClaims struct {
	Sub      string
	Role     domain.Role
	Username string
}

// Claims describes JWT payload: sub, role, username, iat, exp.
type Claims struct {
	Role     domain.Role `json:"role"`
	Username string      `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer builds an issuer. An empty secret yields an issuer whose
// every call fails with ErrSigningUnavailable.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

// Configured reports whether the issuer can sign tokens.
func (ti *TokenIssuer) Configured() bool {
	return ti != nil && len(ti.secret) > 0
}

// Issue builds and signs a token for the subject.
func (ti *TokenIssuer) Issue(c IdentityClaims) (string, time.Time, error) {
	if !ti.Configured() {
		return "", time.Time{}, ErrSigningUnavailable
	}

	issuedAt := ti.now()
	expiresAt := issuedAt.Add(TokenLifetime)
	claims := &Claims{
		Role:     c.Role,
		Username: c.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.Sub,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns claims.
func (ti *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	if !ti.Configured() {
		return nil, ErrSigningUnavailable
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	}, jwt.WithTimeFunc(ti.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
