package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/uuid"
	"go.uber.org/zap"
)

// fakeClock hand-driven time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recorder struct {
	mu        sync.Mutex
	progress  []float64
	completed int
}

func (r *recorder) onProgress(p float64) {
	r.mu.Lock()
	r.progress = append(r.progress, p)
	r.mu.Unlock()
}

func (r *recorder) onComplete() {
	r.mu.Lock()
	r.completed++
	r.mu.Unlock()
}

func (r *recorder) completions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

func (r *recorder) samples() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.progress))
	copy(out, r.progress)
	return out
}

// newTestSession a session over a 100 second video, polled manually
func newTestSession(t *testing.T, rec *recorder) (*Session, *fakeClock) {
	t.Helper()
	manager := NewManager(0, 90, uuid.NewNanoIDGenerator(12), zap.NewNop())
	session, err := manager.Attach(
		&domain.VideoCandidate{ID: "vid1", Duration: "1:40"},
		SessionOptions{OnProgress: rec.onProgress, OnComplete: rec.onComplete},
	)
	if err != nil {
		t.Fatal(err)
	}
	clock := newFakeClock()
	session.clock = clock.Now
	return session, clock
}

func TestAttachRejectsUnparseableDuration(t *testing.T) {
	manager := NewManager(0, 90, uuid.NewNanoIDGenerator(12), zap.NewNop())
	for _, label := range []string{"N/A", "", "soon", "1:2:3:4"} {
		if _, err := manager.Attach(&domain.VideoCandidate{Duration: label}, SessionOptions{}); err == nil {
			t.Errorf("Attach accepted duration label %q", label)
		}
	}
}

func TestAttachParsesDurationLabels(t *testing.T) {
	cases := []struct {
		label string
		want  time.Duration
	}{
		{"1:40", 100 * time.Second},
		{"12:34", 12*time.Minute + 34*time.Second},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second},
	}
	manager := NewManager(0, 90, uuid.NewNanoIDGenerator(12), zap.NewNop())
	for _, tc := range cases {
		session, err := manager.Attach(&domain.VideoCandidate{Duration: tc.label}, SessionOptions{})
		if err != nil {
			t.Fatalf("%q: %v", tc.label, err)
		}
		if session.duration != tc.want {
			t.Errorf("%q parsed to %v, want %v", tc.label, session.duration, tc.want)
		}
	}
}

func TestThresholdBoundary(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)

	if err := session.Play(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(89 * time.Second)
	session.poll()
	if got := rec.completions(); got != 0 {
		t.Fatalf("89%% signaled completion %d times", got)
	}

	clock.Advance(1 * time.Second)
	session.poll()
	if got := rec.completions(); got != 1 {
		t.Fatalf("90%% signaled completion %d times, want 1", got)
	}
}

func TestCompletionSignalsOnce(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)

	session.Play()
	clock.Advance(95 * time.Second)
	session.poll()
	clock.Advance(2 * time.Second)
	session.poll()
	if got := rec.completions(); got != 1 {
		t.Errorf("completion fired %d times, want 1", got)
	}
}

func TestNaturalEndSignalsCompletion(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)
	session.threshold = 101 // only natural end can trigger

	session.Play()
	clock.Advance(100 * time.Second)
	session.poll()

	if session.State() != StateEnded {
		t.Errorf("state = %v, want ended", session.State())
	}
	if got := rec.completions(); got != 1 {
		t.Errorf("completion fired %d times, want 1", got)
	}
	if got := session.Progress(); got != 100 {
		t.Errorf("progress = %v, want 100", got)
	}
}

func TestRestartRearmsCompletion(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)

	session.Play()
	clock.Advance(92 * time.Second)
	session.poll()
	if rec.completions() != 1 {
		t.Fatal("first watch did not complete")
	}

	if err := session.Restart(); err != nil {
		t.Fatal(err)
	}
	if session.State() != StateReady {
		t.Errorf("state after restart = %v, want ready", session.State())
	}
	if session.Progress() != 0 {
		t.Errorf("progress after restart = %v, want 0", session.Progress())
	}

	session.Play()
	clock.Advance(95 * time.Second)
	session.poll()
	if got := rec.completions(); got != 2 {
		t.Errorf("completion fired %d times after rewatch, want 2", got)
	}
}

func TestPauseRetainsProgress(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)

	session.Play()
	clock.Advance(40 * time.Second)
	if err := session.Pause(); err != nil {
		t.Fatal(err)
	}
	if session.State() != StatePaused {
		t.Errorf("state = %v, want paused", session.State())
	}
	if got := session.Progress(); got != 40 {
		t.Errorf("progress = %v, want 40", got)
	}

	// time passing while paused must not advance the playhead
	clock.Advance(30 * time.Second)
	session.poll()
	if got := session.Progress(); got != 40 {
		t.Errorf("progress advanced to %v while paused", got)
	}

	session.Play()
	clock.Advance(10 * time.Second)
	session.poll()
	if got := session.Progress(); got != 50 {
		t.Errorf("progress = %v after resume, want 50", got)
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	rec := &recorder{}
	session, clock := newTestSession(t, rec)

	session.Play()
	clock.Advance(60 * time.Second)
	session.poll()
	if err := session.Seek(20); err != nil {
		t.Fatal(err)
	}

	if got := session.Progress(); got != 60 {
		t.Errorf("progress = %v after backward seek, want the high-water 60", got)
	}
	samples := rec.samples()
	for i := 1; i < len(samples); i++ {
		if samples[i] < samples[i-1] {
			t.Fatalf("progress regressed: %v", samples)
		}
	}
}

func TestSeekForwardCanComplete(t *testing.T) {
	rec := &recorder{}
	session, _ := newTestSession(t, rec)

	session.Play()
	if err := session.Seek(95); err != nil {
		t.Fatal(err)
	}
	if got := rec.completions(); got != 1 {
		t.Errorf("completion fired %d times after forward seek, want 1", got)
	}
}

func TestClosedSessionRejectsControls(t *testing.T) {
	rec := &recorder{}
	session, _ := newTestSession(t, rec)

	session.Close()
	session.Close() // idempotent
	if err := session.Play(); err != ErrSessionClosed {
		t.Errorf("Play after close = %v, want ErrSessionClosed", err)
	}
}

func TestManagerReleaseClosesSession(t *testing.T) {
	manager := NewManager(0, 90, uuid.NewNanoIDGenerator(12), zap.NewNop())
	session, err := manager.Attach(&domain.VideoCandidate{Duration: "1:40"}, SessionOptions{})
	if err != nil {
		t.Fatal(err)
	}

	manager.Release(session.ID())
	if err := session.Play(); err != ErrSessionClosed {
		t.Errorf("Play after release = %v, want ErrSessionClosed", err)
	}
}
