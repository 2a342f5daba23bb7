// Package auth provides token issuing and password hashing for the
// sign-in flow. Tokens are HS256 JWTs carrying the account ID and role;
// the HTTP layer rebuilds the acting principal from the parsed claims.
package auth

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token is invalid")

// Claims is the JWT payload for a signed-in account.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens used by the API.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
// Issued tokens expire after ttl.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the account.
func (s *TokenService) Issue(accountID kernel.UUID, role account.Role) (string, error) {
	if err := accountID.Validate(); err != nil {
		return "", err
	}
	if err := role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// KeyFunc returns the verification key for the echo-jwt middleware.
// Rejects any token not signed with HMAC before handing out the secret.
func (s *TokenService) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: unexpected signing method %q", ErrTokenInvalid, token.Method.Alg())
	}
	return s.secret, nil
}

// Principal rebuilds the acting principal from parsed claims.
func (s *TokenService) Principal(claims *Claims) (account.Principal, error) {
	if claims == nil {
		return account.Principal{}, ErrTokenInvalid
	}

	rawID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return account.Principal{}, fmt.Errorf("%w: bad subject", ErrTokenInvalid)
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Principal{}, fmt.Errorf("%w: bad role", ErrTokenInvalid)
	}

	return account.NewPrincipal(rawID, role)
}
