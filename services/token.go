package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DownloadClaims carry an accepted submission to the download endpoint.
// The name is the raw submission so the file and the drawing keep its casing.
type DownloadClaims struct {
	Name  string `json:"nam"`
	Event string `json:"evt,omitempty"`
	jwt.RegisteredClaims
}

// SignDownloadToken issues a short-lived HS256 link token.
func SignDownloadToken(secret string, exp time.Duration, name, event string) (string, error) {
	now := time.Now()
	claims := DownloadClaims{
		Name:  name,
		Event: event,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseDownloadToken validates signature, algorithm and expiry.
func ParseDownloadToken(secret, raw string) (*DownloadClaims, error) {
	var claims DownloadClaims
	t, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.Name == "" {
		return nil, errors.New("invalid download token")
	}
	return &claims, nil
}
