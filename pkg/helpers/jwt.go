package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
)

// JWTManager handles generation and validation of session tokens.
// The signing secret is process-wide configuration loaded once at startup;
// rotating it invalidates every outstanding token.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	m := &JWTManager{Secret: []byte(secret), SessionTTL: sessionTTL}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// SessionClaims is the payload of a session token: the identity projection
// returned by a successful login.
type SessionClaims struct {
	UserID string      `json:"uid"`
	Role   entity.Role `json:"role"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a signed token for the given user.
func (m *JWTManager) GenerateSessionToken(u *entity.User) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &SessionClaims{
		UserID: u.ID,
		Role:   u.Role,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseSessionToken verifies signature and expiry. Any failure (bad
// signature, malformed payload, expired) comes back as an error; callers
// treat all of them as "not authenticated".
func (m *JWTManager) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
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
