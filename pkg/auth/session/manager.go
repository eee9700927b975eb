// Package session issues, validates and revokes the opaque bearer tokens
// that authenticate HRM employees. State lives in the relational store; the
// manager keeps nothing between calls.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/hrm-backend/pkg/config"
	"github.com/angelmondragon/hrm-backend/pkg/security"
)

// ErrInvalidSession is returned when a token has no active, unexpired session.
var ErrInvalidSession = errors.New("invalid or expired session")

// Record is a new session row.
type Record struct {
	ID           uuid.UUID
	EmployeeID   string
	Token        string
	ExpiresAt    time.Time
	LastActivity string
}

// Active is an active session joined to its employee.
type Active struct {
	ExpiresAt time.Time
	Principal Principal
}

// Store persists sessions. FindActive returns nil, nil when no active row
// matches the token.
type Store interface {
	Create(ctx context.Context, rec Record) error
	FindActive(ctx context.Context, token string) (*Active, error)
	Touch(ctx context.Context, token, stamp string) error
	Deactivate(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// Clock supplies compared instants (UTC) and display stamps.
type Clock interface {
	UTC() time.Time
	NowStamp() string
}

// Validator is the read surface the auth middleware depends on.
type Validator interface {
	Validate(ctx context.Context, token string) (*Principal, error)
}

type Manager struct {
	store       Store
	clock       Clock
	ttl         time.Duration
	rememberTTL time.Duration
	touch       bool
	newToken    func() (string, error)
}

// NewManager constructs a session manager backed by store.
func NewManager(store Store, clk Clock, cfg config.SessionConfig) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if clk == nil {
		return nil, fmt.Errorf("clock is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if cfg.RememberTTL < cfg.TTL {
		return nil, fmt.Errorf("remember-me ttl (%s) must not be shorter than session ttl (%s)", cfg.RememberTTL, cfg.TTL)
	}
	return &Manager{
		store:       store,
		clock:       clk,
		ttl:         cfg.TTL,
		rememberTTL: cfg.RememberTTL,
		touch:       cfg.TouchOnUse,
		newToken:    security.NewSessionToken,
	}, nil
}

// Create issues a token for employeeID and returns it with its lifetime in seconds.
func (m *Manager) Create(ctx context.Context, employeeID string, rememberMe bool) (string, int64, error) {
	if strings.TrimSpace(employeeID) == "" {
		return "", 0, fmt.Errorf("employee id is required")
	}

	ttl := m.ttl
	if rememberMe {
		ttl = m.rememberTTL
	}

	token, err := m.newToken()
	if err != nil {
		return "", 0, err
	}

	rec := Record{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Token:        token,
		ExpiresAt:    m.clock.UTC().Add(ttl),
		LastActivity: m.clock.NowStamp(),
	}
	if err := m.store.Create(ctx, rec); err != nil {
		return "", 0, fmt.Errorf("persist session: %w", err)
	}
	return token, int64(ttl / time.Second), nil
}

// Validate resolves token to its employee. Both instants are compared in UTC.
func (m *Manager) Validate(ctx context.Context, token string) (*Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidSession
	}

	active, err := m.store.FindActive(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if active == nil {
		return nil, ErrInvalidSession
	}
	if !m.clock.UTC().Before(active.ExpiresAt.UTC()) {
		return nil, ErrInvalidSession
	}

	if m.touch {
		if err := m.store.Touch(ctx, token, m.clock.NowStamp()); err != nil {
			return nil, fmt.Errorf("touch session: %w", err)
		}
	}

	principal := active.Principal
	return &principal, nil
}

// Invalidate deactivates the session; unknown or inactive tokens are a no-op.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := m.store.Deactivate(ctx, token); err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions that expired before cutoff or were logged out.
func (m *Manager) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.store.DeleteExpired(ctx, cutoff.UTC())
}
