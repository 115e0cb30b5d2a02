package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every seller-app token.
type Claims struct {
	UserID         string `json:"userId"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, role, orgID, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:         userID,
		Role:           role,
		OrganizationID: orgID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
