package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/barbian-academy/backend/internal/domain"
	"go.uber.org/zap"
)

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

var errKeyNotFound = errors.New("kv: key not found")

func (kv *memoryKV) Set(key string, value string) error {
	kv.data[key] = value
	return nil
}

func (kv *memoryKV) Get(key string) (string, error) {
	if v, ok := kv.data[key]; ok {
		return v, nil
	}
	return "", errKeyNotFound
}

func (kv *memoryKV) Ping() error { return nil }

// stubSearcher scripted VideoSearcher
type stubSearcher struct {
	result *domain.SearchResult
	err    error
	calls  int
}

func (s *stubSearcher) Search(ctx context.Context, lessonTitle string, maxResults int) (*domain.SearchResult, error) {
	s.calls++
	return s.result, s.err
}

func newTestResolver(t *testing.T, searcher domain.VideoSearcher) *Resolver {
	t.Helper()
	overrides := NewOverrideTable(newMemoryKV(), "lessonVideoMap", zap.NewNop())
	return NewResolver(overrides, searcher, 3, zap.NewNop())
}

func TestResolveCuratedOverrideWins(t *testing.T) {
	resolver := newTestResolver(t, nil)
	if err := resolver.SetMapping(12, "abc123xyz"); err != nil {
		t.Fatal(err)
	}

	got := resolver.Resolve(context.Background(), 12, "Introducción al fade: qué es y tipos (low, mid, high)")
	if len(got) != 1 {
		t.Fatalf("expected single curated candidate, got %d", len(got))
	}
	if got[0].ID != "abc123xyz" {
		t.Errorf("candidate ID = %q, want pinned abc123xyz", got[0].ID)
	}
}

func TestResolveExactTitleMatch(t *testing.T) {
	resolver := newTestResolver(t, nil)

	got := resolver.Resolve(context.Background(), 15, "Fade bajo (low fade): paso a paso")
	if len(got) == 0 {
		t.Fatal("expected candidates for an exact-title lesson")
	}
	if got[0].ID != "ScMzIvxBSi4" {
		t.Errorf("first candidate = %q, want curated fade set", got[0].ID)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	resolver := newTestResolver(t, nil)
	ctx := context.Background()
	title := "Fade bajo (low fade): paso a paso"

	first := resolver.Resolve(ctx, 15, title)
	second := resolver.Resolve(ctx, 15, title)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("candidate %d differs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	// cache hit must return the identical slice
	if &first[0] != &second[0] {
		t.Error("second resolve did not serve the cached sequence")
	}
}

func TestResolveKeywordTiers(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Manejo de la tijera: agarre y movimientos básicos", "fJ9rUzIMcZQ"},
		{"Afeitado completo con navaja (cuello, bigote)", "9UAC2qkcrDY"},
		{"Diseño de barba estilo 'line up'", "q-Y0bnx6Ndw"},
		{"Mantenimiento de herramientas", "HEXWRTEbj1I"},
		{"Tipos de cabello y texturas", "jNQXAC9IVRw"},
		// synonym rules
		{"Straight razor basics", "9UAC2qkcrDY"},
		{"Essential tools overview", "HEXWRTEbj1I"},
	}
	for _, tc := range cases {
		resolver := newTestResolver(t, nil)
		got := resolver.Resolve(context.Background(), 1, tc.title)
		if len(got) == 0 {
			t.Fatalf("%q: no candidates", tc.title)
		}
		if got[0].ID != tc.want {
			t.Errorf("%q: first candidate = %q, want %q", tc.title, got[0].ID, tc.want)
		}
	}
}

func TestKeywordOrderFirstMatchWins(t *testing.T) {
	// title matches both "fade" and "tijera" vocabularies, the earlier rule
	// decides
	resolver := newTestResolver(t, nil)
	got := resolver.Resolve(context.Background(), 1, "Fade con tijera")
	if got[0].ID != "ScMzIvxBSi4" {
		t.Errorf("first candidate = %q, want the fade set", got[0].ID)
	}
}

func TestResolveFallbackEmbedsTitle(t *testing.T) {
	resolver := newTestResolver(t, nil)
	title := "Some Completely Unmapped Lesson Title XYZ"

	got := resolver.Resolve(context.Background(), 99, title)
	if len(got) == 0 {
		t.Fatal("fallback must be non-empty")
	}
	if !strings.Contains(got[0].Description, title) {
		t.Errorf("description %q does not embed the lesson title verbatim", got[0].Description)
	}
	if !strings.Contains(got[0].Title, title) {
		t.Errorf("candidate title %q does not embed the lesson title verbatim", got[0].Title)
	}
	if !got[0].Relevant {
		t.Error("fallback candidates are relevant by construction")
	}
}

func TestResolveSearcherResultsPreferred(t *testing.T) {
	searcher := &stubSearcher{result: &domain.SearchResult{
		Videos: []*domain.VideoCandidate{{ID: "remote1", Title: "Remote hit"}},
	}}
	resolver := newTestResolver(t, searcher)

	got := resolver.Resolve(context.Background(), 5, "Postura del barbero y del cliente")
	if got[0].ID != "remote1" {
		t.Errorf("first candidate = %q, want remote result", got[0].ID)
	}
}

func TestResolveSearcherFailureFallsThrough(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("quota exceeded")}
	resolver := newTestResolver(t, searcher)

	got := resolver.Resolve(context.Background(), 3, "Tipos de cabello y texturas")
	if len(got) == 0 {
		t.Fatal("resolver must not fail when search does")
	}
	if got[0].ID != "jNQXAC9IVRw" {
		t.Errorf("first candidate = %q, want the keyword tier result", got[0].ID)
	}
}

func TestResolveSearcherNotCalledOnCacheHit(t *testing.T) {
	searcher := &stubSearcher{result: &domain.SearchResult{
		Videos: []*domain.VideoCandidate{{ID: "remote1"}},
	}}
	resolver := newTestResolver(t, searcher)
	ctx := context.Background()

	resolver.Resolve(ctx, 5, "Postura del barbero y del cliente")
	resolver.Resolve(ctx, 5, "Postura del barbero y del cliente")
	if searcher.calls != 1 {
		t.Errorf("searcher called %d times, want 1", searcher.calls)
	}
}

func TestOverrideTableRoundTrip(t *testing.T) {
	kv := newMemoryKV()
	table := NewOverrideTable(kv, "lessonVideoMap", zap.NewNop())
	if err := table.Set(7, "vid777"); err != nil {
		t.Fatal(err)
	}

	restored := NewOverrideTable(kv, "lessonVideoMap", zap.NewNop())
	videoID, ok := restored.Lookup(7)
	if !ok || videoID != "vid777" {
		t.Errorf("Lookup(7) = %q, %v; want vid777, true", videoID, ok)
	}
}

func TestOverrideTableCorruptBlobIgnored(t *testing.T) {
	kv := newMemoryKV()
	kv.data["lessonVideoMap"] = "[[["

	table := NewOverrideTable(kv, "lessonVideoMap", zap.NewNop())
	if _, ok := table.Lookup(1); ok {
		t.Error("corrupted map must behave as empty")
	}
}
