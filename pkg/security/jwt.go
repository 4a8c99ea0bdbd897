package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AuthTokenTTL = time.Hour * 24 * 30

var ErrTokenInvalid = errors.New("authorization token invalid")

// MakeAuthToken signs an HS256 token for userID
func MakeAuthToken(userID uint, secret string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(userID), 10),
		"type":    "auth",
		"iat":     now.Unix(),
		"exp":     now.Add(AuthTokenTTL).Unix(),
	})

	return t.SignedString([]byte(secret))
}

// ParseAuthToken validates tokenStr and returns the user ID it was issued for.
// Expired tokens are rejected by the parser.
func ParseAuthToken(tokenStr, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("%w, %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	if typ, _ := claims["type"].(string); typ != "auth" {
		return 0, ErrTokenInvalid
	}

	raw, ok := claims["user_id"].(string)
	if !ok {
		return 0, ErrTokenInvalid
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return uint(id), nil
}
