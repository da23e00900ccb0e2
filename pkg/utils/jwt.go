package utils

import (
	"time"

	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

func CreateJWTToken(userID int64, tokenType string, jwtSecretKey string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = userID
	claims["typ"] = tokenType
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// VerifyJWTToken validates the signature, expiry, and token type, and returns
// the user ID the token was issued for.
func VerifyJWTToken(tokenString string, jwtSecretKey string, wantType string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.ErrUnauthorized
	}

	tokenType, ok := claims["typ"].(string)
	if !ok || tokenType != wantType {
		return 0, errs.ErrUnauthorized
	}

	userID, ok := claims["sub"].(float64)
	if !ok {
		return 0, errs.ErrUnauthorized
	}

	return int64(userID), nil
}
