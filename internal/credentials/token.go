package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes a stored token as far as it can be inspected locally.
// The backend owns the token format; when it happens to be a JWT the standard
// claims are surfaced, otherwise only Opaque is set.
type TokenInfo struct {
	Opaque    bool
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect parses the token without verifying its signature. The client never
// holds the signing key; this is for display and local expiry checks only.
func Inspect(token string) TokenInfo {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{Opaque: true}
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}

// Expired reports whether the token is a JWT whose exp claim has passed.
// Opaque tokens and JWTs without an exp claim never expire locally.
func Expired(token string) bool {
	info := Inspect(token)
	if info.Opaque || info.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(info.ExpiresAt)
}
