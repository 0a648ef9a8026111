package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// Session is one logical trip session. All mutable trip state (base, stop
// sequence, latest result) hangs off the session so multiple sessions never
// share state. calcSeq is the generation counter for in-flight
// calculations: a calculation only applies its result while it is still the
// newest one triggered.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	baseAddress string
	base        *models.GeoPoint
	stops       []models.Stop
	result      *models.RouteResult
	calcSeq     uint64
}

// newSession creates a session with a single blank stop; the stop list
// never shrinks below one element.
func newSession() *Session {
	return &Session{
		ID:    uuid.New(),
		stops: []models.Stop{{ID: uuid.New()}},
	}
}

// snapshot returns a copy of the session state safe to hand to callers.
// Callers must hold s.mu.
func (s *Session) snapshot() *models.SessionState {
	state := &models.SessionState{
		ID:          s.ID,
		BaseAddress: s.baseAddress,
		Base:        clonePoint(s.base),
		Stops:       cloneStops(s.stops),
		Result:      s.result,
	}
	return state
}

func clonePoint(p *models.GeoPoint) *models.GeoPoint {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func cloneStops(stops []models.Stop) []models.Stop {
	out := make([]models.Stop, len(stops))
	for i, st := range stops {
		out[i] = st
		out[i].Location = clonePoint(st.Location)
	}
	return out
}

// SessionManager owns all live trip sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionManager creates an empty session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create registers a new session
func (m *SessionManager) Create() *Session {
	s := newSession()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given id
func (m *SessionManager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// CreateSession starts a new trip session with one blank stop
func (uc *RouteCheckUC) CreateSession(ctx context.Context) (*models.SessionState, error) {
	s := uc.sessions.Create()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// GetSession returns the current state of a trip session
func (uc *RouteCheckUC) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// SetBaseAddress updates the session's base address. The geocoded base is
// cleared when the new text no longer matches its place name, which marks
// the base for re-geocoding on the next calculation.
func (uc *RouteCheckUC) SetBaseAddress(ctx context.Context, sessionID uuid.UUID, address string) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseAddress = address
	if s.base != nil && s.base.PlaceName != address {
		s.base = nil
	}

	return s.snapshot(), nil
}
