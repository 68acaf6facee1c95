package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lucky_casino/internal/model"
)

const issuer = "lucky_casino"

// GenerateAccessToken подписывает HS256 токен, ID пользователя лежит в sub
func GenerateAccessToken(userID int, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}

// ParseUserID проверяет токен и достаёт ID пользователя
func ParseUserID(tokenStr string, secretKey []byte) (int, error) {
	claims, err := VerifyToken(tokenStr, secretKey)
	if err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", model.ErrInvalidToken, claims.Subject)
	}

	return id, nil
}
