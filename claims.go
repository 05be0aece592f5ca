package desk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenClaims are the claims the desk backend signs into its tokens
type TokenClaims struct {
	jwt.RegisteredClaims
	UserRole string `json:"role,omitempty"`
}

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Role returns the role claim
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time, zero when absent
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// Expired reports whether the expiration time is before now
func (c *TokenClaims) Expired(now time.Time) bool {
	exp := c.Expires()
	return !exp.IsZero() && exp.Before(now)
}

// InspectToken decodes the token claims WITHOUT verifying the signature.
// The client cannot verify tokens; the result is for display only and must
// not drive routing or session decisions.
func InspectToken(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "unable to decode token").
			WithCode(errors.CodeBadRequest)
	}
	return claims, nil
}
