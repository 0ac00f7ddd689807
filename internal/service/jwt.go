package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func InitJWT(secret string) {
	if secret == "" {
		panic("JWT secret is empty")
	}
	jwtSecret = []byte(secret)
}

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID   int64
	GoogleID string
	Email    string
}

func GenerateJWT(userID int64, googleID, email string) (string, error) {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"sub":       userID,
		"google_id": googleID,
		"email":     email,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       now,
		"nbf":       now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseJWT(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < now {
		return nil, errors.New("token expired")
	}
	if nbf, ok := claims["nbf"].(float64); ok && int64(nbf) > now {
		return nil, errors.New("token not valid yet")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("subject not found")
	}

	tc := &TokenClaims{UserID: int64(sub)}
	if v, ok := claims["google_id"].(string); ok {
		tc.GoogleID = v
	}
	if v, ok := claims["email"].(string); ok {
		tc.Email = v
	}
	return tc, nil
}
