package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when the username
	// or the sign key is empty.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptyUsernameClaim is returned when a correctly signed token carries
	// no username.
	ErrEmptyUsernameClaim = errors.New("empty username claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given username.
//
// The token includes the following claims:
//   - username: the authenticated user's name
//   - Subject   (sub): the username as well
//   - IssuedAt  (iat): the current time
//   - Issuer    (iss): only when issuer is non-empty
//   - ExpiresAt (exp): only when tokenDuration is non-zero
//
// A zero tokenDuration yields a token that never expires.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("travel-diary", "alice", time.Hour, "secret")
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if username == "" || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &models.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Expiration (exp) claim check when the claim is present
//   - Issuer (iss) claim check when tokenIssuer is non-empty
//   - username claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "travel-diary")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, ErrEmptyUsernameClaim
	}

	return models.Token{Token: token, SignedString: tokenString, Username: claims.Username}, nil
}
