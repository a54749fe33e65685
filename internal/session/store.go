package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"health-assistant-api/internal/model"
)

// Store keeps per-session conversation history. History is ephemeral:
// entries expire with the session and are never written to the database.
// No length cap is enforced; unbounded growth within a session lifetime is
// accepted behavior.
type Store interface {
	// History returns the session's turns in order, an empty slice if the
	// session has no history yet.
	History(ctx context.Context, sessionID string) ([]model.ChatTurn, error)
	// Append adds turns to the end of the session's history.
	Append(ctx context.Context, sessionID string, turns ...model.ChatTurn) error
	// Clear removes the session's history. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context, sessionID string) error
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

type tokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// MintToken signs a session identifier into a cookie-sized token.
func MintToken(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a session token and extracts the session identifier.
func ParseToken(secret, tokenString string) (string, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if claims.SessionID == "" {
		return "", fmt.Errorf("session token missing session id")
	}
	return claims.SessionID, nil
}
