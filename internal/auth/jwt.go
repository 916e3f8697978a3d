package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// Device is an authenticated client of the garden. Its name is what a
// gift recipient sees as the sender.
type Device struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// JWTManager issues and validates device tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// deviceClaims carries the device display name next to the standard claims.
type deviceClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// RegisterDevice creates a new device identity for name and signs a token
// for it.
func (m *JWTManager) RegisterDevice(name string) (Device, string, time.Time, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Device{}, "", time.Time{}, domain.NewValidationError("name", "required")
	}
	d := Device{ID: uuid.New(), Name: name}
	token, exp, err := m.IssueToken(d)
	if err != nil {
		return Device{}, "", time.Time{}, err
	}
	return d, token, exp, nil
}

// IssueToken creates a signed HS256 JWT with the device ID as subject.
func (m *JWTManager) IssueToken(d Device) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := deviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   d.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: d.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, exp, nil
}

// ValidateToken parses and validates a device token.
func (m *JWTManager) ValidateToken(tokenString string) (Device, error) {
	if tokenString == "" {
		return Device{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &deviceClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return Device{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*deviceClaims)
	if !ok || !token.Valid {
		return Device{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Device{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Device{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Device{ID: id, Name: claims.Name}, nil
}
