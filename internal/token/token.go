package token

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is how long a session token stays valid. Logout is client-side only, so
// an issued token remains usable until this elapses.
const TTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity a verified token carries.
type Claims struct {
	AccountID string
	Role      string
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "secret" // Default fallback
	}
	return []byte(s)
}

// Issue signs a session token carrying the account id and role.
func Issue(accountID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   accountID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret())
}

// Verify parses and validates a session token. Bad signature, wrong signing
// method, malformed payload and elapsed expiry all map to ErrInvalidToken.
func Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	accountID, idOK := claims["id"].(string)
	role, roleOK := claims["role"].(string)
	if !idOK || !roleOK || accountID == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{AccountID: accountID, Role: role}, nil
}
