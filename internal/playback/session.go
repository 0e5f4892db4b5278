package playback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// State playback session lifecycle
type State int

const (
	StateUninitialized State = iota
	StateReady
	StatePlaying
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "uninitialized"
	}
}

var ErrSessionClosed = errors.New("playback: session closed")

// Session tracks watch position for one attached video. Position advances
// by wall-clock elapsed time while playing, sampled at the poll interval.
// The completion callback fires once per arming, at the threshold or at
// natural end, whichever comes first
type Session struct {
	mu sync.Mutex

	id        string
	duration  time.Duration
	threshold float64

	state       State
	position    time.Duration
	maxProgress float64
	resumedAt   time.Time
	signaled    bool
	closed      bool

	onProgress func(float64)
	onComplete func()

	clock    func() time.Time
	stopPoll chan struct{}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress the session's high-water watch percentage, 0 to 100.
// Non-decreasing until Restart
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxProgress
}

func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state == StatePlaying || s.state == StateEnded {
		return nil
	}
	s.state = StatePlaying
	s.resumedAt = s.clock()
	return nil
}

func (s *Session) Pause() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != StatePlaying {
		s.mu.Unlock()
		return nil
	}
	s.fold(s.clock())
	if s.state == StatePlaying {
		s.state = StatePaused
	}
	notify := s.snapshotCallbacks()
	s.mu.Unlock()

	notify()
	return nil
}

// Seek move the playhead to a percentage of the duration. State is
// unchanged, the high-water progress only moves forward
func (s *Session) Seek(percent float64) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	if s.state == StatePlaying {
		s.fold(s.clock())
	}
	s.position = time.Duration(percent / 100 * float64(s.duration))
	s.observe()
	notify := s.snapshotCallbacks()
	s.mu.Unlock()

	notify()
	return nil
}

// Restart zero the playhead and re-arm the completion signal
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.state = StateReady
	s.position = 0
	s.maxProgress = 0
	s.signaled = false
	return nil
}

// Close stops the poll loop. Safe to call more than once
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.stopPoll != nil {
		close(s.stopPoll)
		s.stopPoll = nil
	}
	s.mu.Unlock()
}

func (s *Session) pollLoop(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.poll()
		}
	}
}

func (s *Session) poll() {
	s.mu.Lock()
	if s.closed || s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	s.fold(s.clock())
	notify := s.snapshotCallbacks()
	s.mu.Unlock()

	notify()
}

// fold advance position by the elapsed time since the last sample.
// Caller holds the lock and guarantees the session is playing
func (s *Session) fold(now time.Time) {
	elapsed := now.Sub(s.resumedAt)
	if elapsed > 0 {
		s.position += elapsed
	}
	s.resumedAt = now
	if s.position >= s.duration {
		s.position = s.duration
		s.state = StateEnded
	}
	s.observe()
}

// observe refresh the high-water progress from the current position.
// Caller holds the lock
func (s *Session) observe() {
	progress := float64(s.position) / float64(s.duration) * 100
	if progress > s.maxProgress {
		s.maxProgress = progress
	}
}

// snapshotCallbacks capture the pending notifications under the lock so
// they can be delivered outside it
func (s *Session) snapshotCallbacks() func() {
	progress := s.maxProgress
	onProgress := s.onProgress
	var onComplete func()
	if !s.signaled && (s.maxProgress >= s.threshold || s.state == StateEnded) {
		s.signaled = true
		onComplete = s.onComplete
	}
	return func() {
		onProgress(progress)
		if onComplete != nil {
			onComplete()
		}
	}
}

// parseDurationLabel convert a "m:ss" or "h:mm:ss" display label into a
// duration. Labels that do not follow the clock format, like "N/A", are
// rejected so the caller can take the degraded text-guide path
func parseDurationLabel(label string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(label), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("unparseable duration label %q", label)
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("unparseable duration label %q", label)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	if total == 0 {
		return 0, fmt.Errorf("zero length duration label %q", label)
	}
	return total, nil
}
