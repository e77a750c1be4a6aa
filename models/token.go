package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users.
//
// Username is the only application-specific claim. Registered claims carry
// the subject (mirrors Username), issue time and, when configured, the
// issuer and expiry.
type Claims struct {
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
//
// Username is a cached copy of the "username" claim populated during token
// construction or after successful verification.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the owner of the token extracted from its claims.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
