package service

import (
	"strings"
	"time"

	"github.com/mebel-next/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionService issues and validates guest session tokens. A session
// is an opaque UUID carried inside a signed JWT; the cart and the
// wishlist are keyed by it.
type SessionService struct {
	cfg *config.SessionConfig
}

// NewSessionService creates a session service.
func NewSessionService(cfg *config.SessionConfig) *SessionService {
	return &SessionService{cfg: cfg}
}

// SessionClaims are the guest session token claims.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Issue creates a new session and its signed token.
func (s *SessionService) Issue() (string, string, time.Time, error) {
	sessionID := uuid.NewString()
	token, expiresAt, err := s.sign(sessionID)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return sessionID, token, expiresAt, nil
}

// Renew re-signs an existing session ID, extending its lifetime.
func (s *SessionService) Renew(sessionID string) (string, time.Time, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", time.Time{}, ErrSessionInvalid
	}
	return s.sign(sessionID)
}

func (s *SessionService) sign(sessionID string) (string, time.Time, error) {
	expireHours := 720
	if s.cfg != nil && s.cfg.ExpireHours > 0 {
		expireHours = s.cfg.ExpireHours
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret()))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates a token and returns its session ID.
func (s *SessionService) Parse(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrSessionInvalid
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret()), nil
	})
	if err != nil {
		return "", ErrSessionInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.SessionID) == "" {
		return "", ErrSessionInvalid
	}
	return claims.SessionID, nil
}

func (s *SessionService) secret() string {
	if s.cfg != nil && strings.TrimSpace(s.cfg.SecretKey) != "" {
		return s.cfg.SecretKey
	}
	return "change-me-in-production"
}
