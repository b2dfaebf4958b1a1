package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config configures the JWT manager. This service only verifies tokens; the
// secret must match the one used by the auth service that issues them.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Manager handles JWT token verification.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims represents the JWT claims structure shared with the auth service.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
