package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/budget"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/categorization"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
)

// ErrUserExists is returned when registering a user ID twice
var ErrUserExists = errors.New("user already exists")

// Session is the in-memory state of one user. Every operation on it must run
// inside Do or Run, which serialize the user's transaction stream.
type Session struct {
	User        *domain.User
	Machine     *mode.Machine
	Budget      *budget.Context
	Categorizer *categorization.Categorizer

	mu         sync.Mutex
	newMachine func(owner mode.Listener) *mode.Machine
}

// Do runs fn while holding the session lock
func (s *Session) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Run is Do for reads and updates that cannot fail
func (s *Session) Run(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// ResetMachine replaces the mode machine with a fresh one in Budgeting mode.
// Call it inside Do or Run.
func (s *Session) ResetMachine() {
	s.Machine = s.newMachine(s.User)
}

// Manager is the registry of user sessions. Sessions share no mutable state.
type Manager struct {
	mu              sync.RWMutex
	sessions        map[uuid.UUID]*Session
	defaultStrategy string
	modeOpts        []mode.Option
}

// NewManager creates an empty registry. New sessions start with the named budget
// strategy and a mode machine built with modeOpts.
func NewManager(defaultStrategy string, modeOpts ...mode.Option) (*Manager, error) {
	if _, err := budget.ByName(defaultStrategy); err != nil {
		return nil, err
	}
	return &Manager{
		sessions:        make(map[uuid.UUID]*Session),
		defaultStrategy: defaultStrategy,
		modeOpts:        modeOpts,
	}, nil
}

// Create registers a session for user
func (m *Manager) Create(user *domain.User) (*Session, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	strategy, err := budget.ByName(m.defaultStrategy)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[user.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", user.ID, ErrUserExists)
	}

	s := &Session{
		User:        user,
		Budget:      budget.NewContext(strategy),
		Categorizer: categorization.NewCategorizer(),
		newMachine: func(owner mode.Listener) *mode.Machine {
			return mode.NewMachine(owner, m.modeOpts...)
		},
	}
	s.ResetMachine()
	m.sessions[user.ID] = s
	return s, nil
}

// Get returns the session of userID, or an error wrapping domain.ErrNotFound
func (m *Manager) Get(userID uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return s, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
