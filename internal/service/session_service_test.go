package service

import (
	"errors"
	"testing"

	"github.com/mebel-next/internal/config"
)

func newTestSessionService() *SessionService {
	return NewSessionService(&config.SessionConfig{
		SecretKey:   "session-test-secret",
		ExpireHours: 1,
	})
}

func TestSessionIssueAndParseRoundTrip(t *testing.T) {
	svc := newTestSessionService()

	sessionID, token, expiresAt, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if sessionID == "" || token == "" {
		t.Fatalf("issue want non-empty session and token")
	}
	if expiresAt.IsZero() {
		t.Fatalf("issue want expiry")
	}

	parsed, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != sessionID {
		t.Fatalf("session want %s got %s", sessionID, parsed)
	}
}

func TestSessionParseRejectsBadTokens(t *testing.T) {
	svc := newTestSessionService()

	if _, err := svc.Parse(""); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("empty token want ErrSessionInvalid got %v", err)
	}
	if _, err := svc.Parse("not-a-jwt"); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("garbage token want ErrSessionInvalid got %v", err)
	}

	other := NewSessionService(&config.SessionConfig{SecretKey: "other-secret", ExpireHours: 1})
	_, token, _, err := other.Issue()
	if err != nil {
		t.Fatalf("issue on other service failed: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("foreign signature want ErrSessionInvalid got %v", err)
	}
}

func TestSessionRenewKeepsID(t *testing.T) {
	svc := newTestSessionService()

	sessionID, _, _, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	token, _, err := svc.Renew(sessionID)
	if err != nil {
		t.Fatalf("renew failed: %v", err)
	}
	parsed, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse renewed failed: %v", err)
	}
	if parsed != sessionID {
		t.Fatalf("renewed session want %s got %s", sessionID, parsed)
	}

	if _, _, err := svc.Renew("  "); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("blank renew want ErrSessionInvalid got %v", err)
	}
}
