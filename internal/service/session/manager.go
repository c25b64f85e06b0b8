// Package session owns the per-farmer selection state: the profile, the
// step navigator and the in-memory store keyed by session id. Every session
// is private to its caller; mutations are serialized by the store's lock.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/internal/service/matching"
)

var (
	// ErrNotFound is returned for unknown or expired session ids.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidLanguage is returned for a code outside the supported set.
	ErrInvalidLanguage = errors.New("unsupported language code")
	// ErrInvalidCrop is returned for a crop outside the closed enumeration.
	ErrInvalidCrop = errors.New("unknown crop type")
	// ErrInvalidLandSize is returned for a land size outside the closed enumeration.
	ErrInvalidLandSize = errors.New("unknown land size")
)

// Manager handles farmer session states.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	schemes  []models.Scheme
	ttl      time.Duration
	logger   *zap.Logger
}

// NewManager creates a session manager over the loaded scheme catalog.
func NewManager(schemes []models.Scheme, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		schemes:  schemes,
		ttl:      ttl,
		logger:   logger,
	}
}

// Create starts a fresh session at the language step with the default
// language already set.
func (m *Manager) Create() Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Profile:   models.NewFarmerProfile(),
		Step:      StepLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return *sess
}

// Get retrieves a snapshot of the session.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// SetLanguage replaces the session language. Any defined code is accepted
// and existing crop/land selections are kept. Selecting a language at the
// language step advances the flow to crop selection.
func (m *Manager) SetLanguage(id string, lang models.Language) (Session, error) {
	if !lang.IsValid() {
		return Session{}, ErrInvalidLanguage
	}
	return m.update(id, func(s *Session) {
		s.Profile.Language = lang
		if s.Step == StepLanguage {
			s.Step = StepCrop
		}
	})
}

// SetCrop records the crop selection and advances crop → land.
func (m *Manager) SetCrop(id string, crop models.CropType) (Session, error) {
	if !crop.IsValid() {
		return Session{}, ErrInvalidCrop
	}
	return m.update(id, func(s *Session) {
		s.Profile.Crop = &crop
		if s.Step == StepCrop {
			s.Step = StepLand
		}
	})
}

// SetLandSize records the land-size selection and advances land → schemes.
func (m *Manager) SetLandSize(id string, size models.LandSize) (Session, error) {
	if !size.IsValid() {
		return Session{}, ErrInvalidLandSize
	}
	return m.update(id, func(s *Session) {
		s.Profile.LandSize = &size
		if s.Step == StepLand {
			s.Step = StepSchemes
		}
	})
}

// Back moves to the immediately preceding step. There is no history beyond
// one level; at the language step it is a no-op.
func (m *Manager) Back(id string) (Session, error) {
	return m.update(id, func(s *Session) {
		s.Step = s.Step.previous()
	})
}

// Home discards crop and land size, keeps the language choice, and lands on
// the step immediately after language selection.
func (m *Manager) Home(id string) (Session, error) {
	return m.update(id, func(s *Session) {
		s.Profile.Reset()
		s.Step = StepCrop
	})
}

// MatchingSchemes recomputes the eligible schemes for the session's current
// profile. The result is empty until both crop and land size are chosen.
func (m *Manager) MatchingSchemes(id string) ([]models.Scheme, Session, error) {
	sess, err := m.Get(id)
	if err != nil {
		return nil, Session{}, err
	}
	return matching.Match(sess.Profile, m.schemes), sess, nil
}

// Sweep drops sessions idle longer than the configured TTL and returns how
// many were removed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.UpdatedAt) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("swept idle sessions", zap.Int("removed", removed), zap.Int("remaining", len(m.sessions)))
	}
	return removed
}

func (m *Manager) update(id string, mutate func(*Session)) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	mutate(sess)
	sess.UpdatedAt = time.Now()
	return *sess, nil
}
