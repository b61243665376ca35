package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret sets the secret used to sign and verify session tokens.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Claims are the session token claims. AppRole mirrors the profile role at
// issue time; it is a fast-path hint, not the source of truth, and may lag
// behind the profile row until the token is reissued.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	AppRole string `json:"app_role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for the given user.
func GenerateToken(userID uint, email, role string, expireHour int) (string, error) {
	if expireHour <= 0 {
		expireHour = 24
	}

	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Email:   email,
		AppRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHour) * time.Hour)),
			Issuer:    "renohub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
