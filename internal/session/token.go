package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend issues JWTs, but the client treats them as opaque bearer
// credentials: nothing here verifies a signature or trusts a claim for
// authorization. Claims are decoded unverified purely as a UX hint, e.g. to
// warn before a call that is certain to 401.

// TokenExpiry returns the unverified exp claim of the held token. ok is
// false when no token is held or the token carries no readable expiry.
func (s *Store) TokenExpiry() (expiry time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresSoon reports whether the held token expires within the window.
// Advisory only; the authoritative rejection is the server's 401.
func (s *Store) ExpiresSoon(window time.Duration) bool {
	expiry, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return time.Until(expiry) < window
}
