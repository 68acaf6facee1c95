package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

const refreshTokenBytes = 32

// GenerateRefreshToken случайный токен, в базе хранится только его хэш
func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func VerifyRefreshToken(token, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(hash)) == 1
}
