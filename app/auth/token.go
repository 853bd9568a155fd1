package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a bearer token can fail validation: bad
// signature, expired, or missing subject. Callers get no finer distinction.
var ErrInvalidToken = errors.New("invalid or expired token")

// Signer issues and validates HS256-signed bearer tokens. Tokens are
// stateless: possession is sufficient, there is no server-side session table
// and therefore no revocation before expiry.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer with the given symmetric secret and token
// lifetime in minutes.
func NewSigner(secret string, expMinutes int) *Signer {
	return &Signer{secret: []byte(secret), ttl: time.Duration(expMinutes) * time.Minute}
}

// Issue signs a token for the principal, expiring ttl from now.
func (s *Signer) Issue(principal string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   principal,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the token's signature and expiry and returns the subject
// principal. Any failure is reported as ErrInvalidToken.
func (s *Signer) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
