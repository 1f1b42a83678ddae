// Package auth implements stateless session tokens: HS256-signed JWTs
// carrying the account id and an expiry.
package auth

import (
	"errors"
	"time"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// GenerateToken signs a token embedding userID, valid for validityDuration.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry and returns the
// embedded account id. Expired tokens yield common.ErrTokenExpired; any
// other parse or signature failure yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
