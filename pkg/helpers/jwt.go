package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of access tokens.
// Tokens are stateless bearer credentials: validity is entirely a function
// of the HMAC signature and the expiry claim.
type JWTManager struct {
	Secret   []byte
	TokenTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, tokenTTL time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:   []byte(secret),
		TokenTTL: tokenTTL,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed access token carrying the user's id and role.
func (m *JWTManager) GenerateToken(userID, role string) (string, time.Time, error) {
	exp := time.Now().Add(m.TokenTTL)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseToken verifies the signature and expiry and returns the embedded claims.
func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
