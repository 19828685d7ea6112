package types

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the claims in an admin session token
type TokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
