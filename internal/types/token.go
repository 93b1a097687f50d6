package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of a bearer token. Tokens carry no expiry, so
// only the user id is meaningful.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}
