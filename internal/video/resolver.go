package video

import (
	"context"
	"strings"
	"sync"

	"github.com/barbian-academy/backend/internal/domain"
	"go.uber.org/zap"
)

// Resolver maps lessons to ranked video candidates through a tiered lookup:
// curated override, cached result, exact title table, remote search, keyword
// rules, synthesized fallback. Resolution never fails, a remote outage only
// means skipping that tier
type Resolver struct {
	mu         sync.Mutex
	cache      map[string][]*domain.VideoCandidate
	overrides  *OverrideTable
	searcher   domain.VideoSearcher
	maxResults int
	logger     *zap.Logger
}

var _ domain.VideoResolver = &Resolver{}

// NewResolver create a resolver instance. searcher is optional, pass nil to
// run on the curated tables alone
func NewResolver(overrides *OverrideTable, searcher domain.VideoSearcher, maxResults int, logger *zap.Logger) *Resolver {
	return &Resolver{
		cache:      make(map[string][]*domain.VideoCandidate),
		overrides:  overrides,
		searcher:   searcher,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Resolve return an ordered, non-empty candidate list for the lesson.
// Results for a title are cached for the process lifetime, repeated lookups
// return the identical slice
func (r *Resolver) Resolve(ctx context.Context, lessonID int, lessonTitle string) []*domain.VideoCandidate {
	// curated pins are ID-keyed and mutable at runtime, they bypass the
	// title cache
	if videoID, ok := r.overrides.Lookup(lessonID); ok {
		return []*domain.VideoCandidate{curatedCandidate(videoID)}
	}

	cacheKey := strings.ToLower(lessonTitle)

	r.mu.Lock()
	if cached, ok := r.cache[cacheKey]; ok {
		r.mu.Unlock()
		r.logger.Debug("Using cached video results", zap.String("lesson.title", lessonTitle))
		return cached
	}
	r.mu.Unlock()

	candidates := r.lookup(ctx, cacheKey, lessonTitle)

	r.mu.Lock()
	r.cache[cacheKey] = candidates
	r.mu.Unlock()

	r.logger.Debug("Resolved lesson videos",
		zap.String("lesson.title", lessonTitle),
		zap.Int("video.count", len(candidates)))
	return candidates
}

func (r *Resolver) lookup(ctx context.Context, lowerTitle, lessonTitle string) []*domain.VideoCandidate {
	if candidates, ok := matchExactTitle(lowerTitle); ok {
		return candidates
	}

	if r.searcher != nil {
		result, err := r.searcher.Search(ctx, lessonTitle, r.maxResults)
		if err != nil {
			// fail open, the next tier serves the lesson
			r.logger.Warn("Video search unavailable, falling back",
				zap.String("lesson.title", lessonTitle),
				zap.Error(err))
		} else if len(result.Videos) > 0 {
			return result.Videos
		}
	}

	if candidates, ok := matchKeyword(lowerTitle); ok {
		return candidates
	}
	return fallbackCandidates(lessonTitle)
}

// SetMapping pin a curated video to a lesson
func (r *Resolver) SetMapping(lessonID int, videoID string) error {
	return r.overrides.Set(lessonID, videoID)
}
