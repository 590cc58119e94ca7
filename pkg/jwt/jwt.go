package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Claims carries the session descriptor issued at login.
type Claims struct {
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	CashierID string    `json:"cashier_id,omitempty"`
	Name      string    `json:"name,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
	jwt.RegisteredClaims
}

// GetSecretKey returns the JWT secret from environment or a default
func GetSecretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "swiftpos-dev-secret-change-in-production"
	}
	return []byte(secret)
}

// GenerateToken creates a new session token. CashierID is empty for the
// admin session.
func GenerateToken(role, username, cashierID, name string, loggedAt time.Time) (string, error) {
	expirationHours := 12 // one shift plus slack

	claims := &Claims{
		Role:      role,
		Username:  username,
		CashierID: cashierID,
		Name:      name,
		LoggedAt:  loggedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "swiftpos",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// ValidateToken parses and validates a session token.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return GetSecretKey(), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
