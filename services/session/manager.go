package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"servicehub/models"
	"servicehub/services/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns session lifecycle. Only Start fetches data; every setter
// mutates UI state through Store.Update and nothing else.
type Manager struct {
	store   Store
	gateway gateway.Gateway
	logger  *zap.Logger

	mu    sync.Mutex
	loads map[string]chan struct{}

	newID func() string
	now   func() time.Time
}

func NewManager(store Store, gw gateway.Gateway, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:   store,
		gateway: gw,
		logger:  logger,
		loads:   make(map[string]chan struct{}),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Start creates a fresh session and launches its one-time batch fetch.
// The returned session is still loading.
func (m *Manager) Start(ctx context.Context) (*Session, error) {
	s := &Session{
		ID:        m.newID(),
		Role:      models.RoleCustomer,
		UI:        models.DefaultUIState(),
		Loading:   true,
		CreatedAt: m.now(),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	m.mu.Lock()
	m.loads[s.ID] = done
	m.mu.Unlock()

	go m.load(s.ID, s.Snapshot, done)
	return s, nil
}

// load runs detached from the request that started it; the batch has no
// cancellation and completes even if the browser goes away.
func (m *Manager) load(id string, prior models.Snapshot, done chan struct{}) {
	defer func() {
		m.mu.Lock()
		delete(m.loads, id)
		m.mu.Unlock()
		close(done)
	}()

	ctx := context.Background()
	res := m.gateway.FetchAll(ctx, prior)
	if !res.OK() {
		m.logFetchFailure(id, res.Err)
	}

	_, err := m.store.Update(ctx, id, func(s *Session) error {
		if !s.Loading {
			return nil
		}
		if res.OK() {
			s.Snapshot = res.Snapshot
			s.LoadErr = ""
		} else {
			s.LoadErr = res.Err.Error()
		}
		s.Loading = false
		s.LoadedAt = m.now()
		return nil
	})
	switch {
	case err == nil:
		return
	case errors.Is(err, ErrNotFound):
		// The session was reset or expired while loading.
		m.logger.Warn("session: dropping batch result", zap.String("session_id", id))
		return
	}

	// The result could not be stored. Settle the session on its prior
	// snapshot so it does not stay loading.
	m.logger.Error("session: failed to store batch result", zap.String("session_id", id), zap.Error(err))
	storeErr := err
	_, err = m.store.Update(ctx, id, func(s *Session) error {
		if !s.Loading {
			return nil
		}
		s.LoadErr = "store batch result: " + storeErr.Error()
		s.Loading = false
		s.LoadedAt = m.now()
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.logger.Error("session: failed to clear loading state", zap.String("session_id", id), zap.Error(err))
	}
}

func (m *Manager) logFetchFailure(id string, err error) {
	fields := []zap.Field{zap.String("session_id", id), zap.Error(err)}
	var fetchErr *gateway.FetchError
	if errors.As(err, &fetchErr) {
		fields = append(fields, zap.String("endpoint", fetchErr.Endpoint), zap.Int("status", fetchErr.Status))
	}
	m.logger.Error("session: initial data fetch failed; keeping previous data", fields...)
}

// AwaitLoad blocks until the session's batch has settled or ctx is done.
func (m *Manager) AwaitLoad(ctx context.Context, id string) error {
	m.mu.Lock()
	done, ok := m.loads[id]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// GetOrStart returns the session for id, starting a new one when id is
// empty or unknown. The bool reports whether a new session was started.
func (m *Manager) GetOrStart(ctx context.Context, id string) (*Session, bool, error) {
	if id != "" {
		s, err := m.store.Get(ctx, id)
		if err == nil {
			return s, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
	}
	s, err := m.Start(ctx)
	return s, true, err
}

// SwitchRole sets the active role. Any role may follow any other; the only
// side effect is closing the mobile menu.
func (m *Manager) SwitchRole(ctx context.Context, id string, role models.Role) (*Session, error) {
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, err
	}
	return m.store.Update(ctx, id, func(s *Session) error {
		s.Role = role
		s.UI.MenuOpen = false
		return nil
	})
}

func (m *Manager) ToggleMenu(ctx context.Context, id string) (*Session, error) {
	return m.store.Update(ctx, id, func(s *Session) error {
		s.UI.MenuOpen = !s.UI.MenuOpen
		return nil
	})
}

func (m *Manager) SelectTab(ctx context.Context, id string, tab models.ServiceTab) (*Session, error) {
	if _, err := models.ParseServiceTab(string(tab)); err != nil {
		return nil, err
	}
	return m.store.Update(ctx, id, func(s *Session) error {
		s.UI.ServiceTab = tab
		return nil
	})
}

// UpdateCabForm records the booking form fields. Nothing is submitted.
func (m *Manager) UpdateCabForm(ctx context.Context, id string, form models.CabForm) (*Session, error) {
	form.Pickup = strings.TrimSpace(form.Pickup)
	form.Destination = strings.TrimSpace(form.Destination)
	form.ServiceType = strings.TrimSpace(form.ServiceType)
	return m.store.Update(ctx, id, func(s *Session) error {
		s.UI.Cab = form
		return nil
	})
}

func (m *Manager) SelectHandymanCategory(ctx context.Context, id, category string) (*Session, error) {
	return m.store.Update(ctx, id, func(s *Session) error {
		s.UI.HandymanCategory = strings.TrimSpace(category)
		return nil
	})
}

// Reset discards the session and starts over, the equivalent of a full reload.
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		if err := m.store.Delete(ctx, id); err != nil {
			return nil, err
		}
	}
	return m.Start(ctx)
}

func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}
