// Package token inspects the stored bearer token without verifying it.
// Verification is the server's job; the client only avoids sending a token
// it can already tell is expired.
package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Expired reports whether tokenStr carries an exp claim in the past.
// Opaque (non-JWT) tokens and tokens without exp are treated as live and
// left for the server to judge.
func Expired(tokenStr string, now time.Time) bool {
	parser := jwtlib.NewParser()
	claims := jwtlib.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
