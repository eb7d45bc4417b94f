package mode

import (
	"io"
	"log"
	"time"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// TransitionRecord is one applied mode change
type TransitionRecord struct {
	From   Kind
	To     Kind
	Reason string
	At     time.Time
}

// Machine routes transactions to the active mode and applies the transitions
// modes request. It is not safe for concurrent use; callers serialize per user.
type Machine struct {
	cfg     Config
	owner   Listener
	current Mode
	history []TransitionRecord
	now     func() time.Time
}

// NewMachine starts in Budgeting mode and announces it to owner. owner may be nil.
func NewMachine(owner Listener, opts ...Option) *Machine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	m := &Machine{
		cfg:   cfg,
		owner: owner,
		now:   time.Now,
	}
	m.current = newMode(KindBudgeting, cfg)
	m.notify(KindBudgeting)
	return m
}

// Kind returns the active mode
func (m *Machine) Kind() Kind {
	return m.current.Kind()
}

// Name returns the display name of the active mode
func (m *Machine) Name() string {
	return m.current.Kind().DisplayName()
}

// History returns the transitions applied so far, oldest first
func (m *Machine) History() []TransitionRecord {
	out := make([]TransitionRecord, len(m.history))
	copy(out, m.history)
	return out
}

// HandleTransaction feeds tx to the active mode and applies at most one transition.
// The applied transition is returned, nil when the mode stayed.
func (m *Machine) HandleTransaction(tx *domain.Transaction) *Transition {
	requested := m.current.HandleTransaction(tx)
	if requested == nil || requested.To == m.current.Kind() {
		return nil
	}
	m.apply(requested.To, requested.Reason)
	return requested
}

// TransitionTo switches modes explicitly. Switching to the active mode starts it afresh.
func (m *Machine) TransitionTo(kind Kind, reason string) {
	m.apply(kind, reason)
}

// Recommendations delegates to the active mode only
func (m *Machine) Recommendations(p Portfolio) []domain.Recommendation {
	return m.current.Recommendations(p)
}

// Reports returns the active mode's projections
func (m *Machine) Reports(est PerformanceEstimator) []ReportProjection {
	if est == nil {
		est = NoEstimates{}
	}
	return m.current.Reports(est)
}

// apply discards the active mode with its aggregates and starts a fresh instance of kind
func (m *Machine) apply(kind Kind, reason string) {
	from := m.current.Kind()
	m.current = newMode(kind, m.cfg)
	m.history = append(m.history, TransitionRecord{From: from, To: kind, Reason: reason, At: m.now()})
	m.cfg.Logger.Printf("financial mode %s -> %s: %s", from.DisplayName(), kind.DisplayName(), reason)
	m.notify(kind)
}

func (m *Machine) notify(kind Kind) {
	if m.owner == nil {
		m.cfg.Logger.Printf("no owner attached, %s not announced", kind.DisplayName())
		return
	}
	m.owner.SetFinancialMode(kind.DisplayName())
}
