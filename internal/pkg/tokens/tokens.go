// Package tokens mints and parses the signed session tokens handed to agents
// on login. Tokens are HS256 JWTs whose subject is the agent id; the session
// store keeps a copy so sessions can be closed server-side.
package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"paquexpress/internal/pkg/errs"
)

// Signer issues and validates session tokens under a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer. The secret must not be empty and the ttl must
// be positive; both come from service configuration.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("token secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}

	return &Signer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed token for the given agent id, valid for the
// configured ttl from now.
func (s *Signer) Issue(agentID string) (string, error) {
	if agentID == "" {
		return "", errs.NewValueIsRequiredError("agentID")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   agentID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// Parse validates the token signature and expiry and returns the agent id
// it was issued for.
func (s *Signer) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("session token", err)
	}

	if claims.Subject == "" {
		return "", errs.NewValueIsInvalidError("session token subject")
	}

	return claims.Subject, nil
}
