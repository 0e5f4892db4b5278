package playback

import (
	"sync"
	"time"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/uuid"
	"go.uber.org/zap"
)

// SessionOptions capabilities a caller hands to an attached session.
// Both callbacks default to no-ops. Threshold overrides the manager's
// completion threshold when positive, evaluations demand a longer watch
type SessionOptions struct {
	OnProgress func(float64)
	OnComplete func()
	Threshold  float64
}

// Manager attaches playback sessions to resolved video candidates
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	pollInterval time.Duration
	threshold    float64
	idGenerator  uuid.Generator
	logger       *zap.Logger
}

// NewManager pollInterval of zero disables the background poll, position
// then only advances on explicit pause and seek samples
func NewManager(pollInterval time.Duration, threshold float64, IDGenerator uuid.Generator, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:     make(map[string]*Session),
		pollInterval: pollInterval,
		threshold:    threshold,
		idGenerator:  IDGenerator,
		logger:       logger,
	}
}

// Attach create a session for a candidate. Candidates whose duration
// label cannot be parsed are rejected, the caller falls back to the
// text guide
func (m *Manager) Attach(candidate *domain.VideoCandidate, opts SessionOptions) (*Session, error) {
	duration, err := parseDurationLabel(candidate.Duration)
	if err != nil {
		return nil, err
	}

	id, err := m.idGenerator.Generate()
	if err != nil {
		return nil, err
	}

	threshold := m.threshold
	if opts.Threshold > 0 {
		threshold = opts.Threshold
	}
	if opts.OnProgress == nil {
		opts.OnProgress = func(float64) {}
	}
	if opts.OnComplete == nil {
		opts.OnComplete = func() {}
	}

	session := &Session{
		id:         id,
		duration:   duration,
		threshold:  threshold,
		state:      StateReady,
		onProgress: opts.OnProgress,
		onComplete: opts.OnComplete,
		clock:      time.Now,
	}
	if m.pollInterval > 0 {
		session.stopPoll = make(chan struct{})
		go session.pollLoop(m.pollInterval, session.stopPoll)
	}

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	m.logger.Debug("Playback session attached",
		zap.String("session.id", id),
		zap.String("video.id", candidate.ID),
		zap.Duration("video.duration", duration))
	return session, nil
}

// Release close a session and drop it from the registry
func (m *Manager) Release(id string) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		session.Close()
		m.logger.Debug("Playback session released", zap.String("session.id", id))
	}
}
