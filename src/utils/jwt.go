package utils

import (
	"fmt"
	"os"
	"time"
	"venise/src/types"

	"github.com/golang-jwt/jwt/v4"
)

func GenerateJWT(email string, userID uint, role string) (string, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	now := time.Now()
	claims := types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(key)
}
