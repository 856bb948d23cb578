package session

import (
	"context"
	"errors"
	"time"

	"servicehub/models"
)

var ErrNotFound = errors.New("session not found")

// Session is one browser's view of the marketplace: the fetched snapshot plus
// every piece of UI state. It lives until it expires or is reset.
type Session struct {
	ID        string          `json:"id"`
	Role      models.Role     `json:"role"`
	UI        models.UIState  `json:"ui"`
	Snapshot  models.Snapshot `json:"snapshot"`
	Loading   bool            `json:"loading"`
	LoadErr   string          `json:"load_err,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	LoadedAt  time.Time       `json:"loaded_at,omitempty"`
}

// RoleContext returns the immutable context handed to renderers.
func (s *Session) RoleContext() models.RoleContext {
	return models.RoleContext{Role: s.Role}
}

// Store persists sessions. Update must apply fn atomically for a given id.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
