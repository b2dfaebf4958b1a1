package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"usecase-srv/pkg/scope"
)

// Verify parses and validates a token string and returns its payload.
func (m *Manager) Verify(tokenString string) (scope.Payload, error) {
	claims := &Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if m.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, parserOpts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return scope.Payload{}, fmt.Errorf("invalid token")
	}

	return scope.Payload{
		Subject:  claims.Subject,
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}
