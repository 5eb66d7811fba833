package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CookieClaims carries a signed cookie value
type CookieClaims struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	jwt.RegisteredClaims
}

// CookieSigner signs and verifies cookie values so clients cannot forge them
type CookieSigner struct {
	secretKey string
}

// NewCookieSigner creates a new CookieSigner
func NewCookieSigner(secretKey string) *CookieSigner {
	return &CookieSigner{secretKey: secretKey}
}

// Sign binds value to the cookie name and returns the HS256 token to store
func (cs *CookieSigner) Sign(name, value string) (string, error) {
	claims := &CookieClaims{Name: name, Value: value}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cs.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign cookie: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and that the token was issued for name
func (cs *CookieSigner) Verify(name, signed string) (string, error) {
	token, err := jwt.ParseWithClaims(signed, &CookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cs.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("failed to parse cookie: %w", err)
	}

	claims, ok := token.Claims.(*CookieClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid cookie")
	}
	if claims.Name != name {
		return "", fmt.Errorf("cookie was signed for %q", claims.Name)
	}
	return claims.Value, nil
}
