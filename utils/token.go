package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtCustomClaim keeps the employee identity in the standard subject claim,
// encoded as a string. It is resolved back to an integer id on every
// protected request.
type JwtCustomClaim struct {
	jwt.StandardClaims
}

var jwtSecret = []byte(getJwtSecret())

func getJwtSecret() string {
	secret := os.Getenv("API_SECRET")
	if secret == "" {
		return "super-secret-key"
	}
	return secret
}

func tokenLifespan() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Hour * time.Duration(hours)
}

func JwtGenerate(funcionarioID int) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaim{
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(funcionarioID),
			ExpiresAt: time.Now().Add(tokenLifespan()).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	token, err := t.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return token, nil
}

func JwtValidate(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("there's a problem with the signing method")
		}
		return jwtSecret, nil
	})
}

// FuncionarioIdFromToken validates the bearer token and resolves the string
// subject claim back to the employee's integer id.
func FuncionarioIdFromToken(token string) (int, error) {
	validated, err := JwtValidate(token)
	if err != nil || !validated.Valid {
		return 0, Unauthorized("token inválido ou expirado")
	}
	claims, ok := validated.Claims.(*JwtCustomClaim)
	if !ok {
		return 0, Unauthorized("token inválido ou expirado")
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, Unauthorized("token inválido ou expirado")
	}
	return id, nil
}
