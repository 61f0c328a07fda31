package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/museum-user-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be issued
	// because the sign key or the subject is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned when a correctly signed token carries no
	// subject id.
	ErrEmptySubject = errors.New("empty subject error")
)

// TokenParams holds the server-side settings used to issue and verify
// credential tokens.
type TokenParams struct {
	// SignKey is the HMAC-SHA256 secret. Required.
	SignKey string
	// Issuer, when non-empty, is written to "iss" and required on parse.
	Issuer string
	// Duration, when non-zero, adds "exp" = now + Duration.
	Duration time.Duration
}

// GenerateJWTToken creates a signed HS256 token for identity.
//
// The payload carries "_id" and "userName", plus "sub" (the user id) and
// "iat". "iss" and "exp" are added only when params configure them.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.Identity{UserID: id, UserName: name}, params)
func GenerateJWTToken(identity models.Identity, params TokenParams) (models.Token, error) {
	if params.SignKey == "" || identity.UserID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		UserID:   identity.UserID,
		UserName: identity.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   params.Issuer,
			Subject:  identity.UserID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if params.Duration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(params.Duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes:
//   - HS256 signature against params.SignKey (other algorithms are rejected)
//   - "exp", when present
//   - "iss", when params.Issuer is set
//   - a non-empty "_id" claim
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
