package domain

import (
	"context"
)

// VideoCandidate a resolved video recommendation with display metadata.
// Never persisted, recomputed or served from cache per session
type VideoCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Duration    string `json:"duration"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Relevant    bool   `json:"relevantToLesson"`
}

// SearchResult response of the video search proxy. Upstream failures are
// mapped to an empty Videos slice with Error set, never a hard error
type SearchResult struct {
	Videos       []*VideoCandidate `json:"videos"`
	SearchQuery  string            `json:"searchQuery,omitempty"`
	TotalResults int               `json:"totalResults,omitempty"`
	Message      string            `json:"message,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// VideoResolver maps a lesson to an ordered, non-empty candidate list.
// Resolution never fails, it degrades to synthesized placeholders
type VideoResolver interface {
	Resolve(ctx context.Context, lessonID int, lessonTitle string) []*VideoCandidate
	SetMapping(lessonID int, videoID string) error
}

// VideoSearcher remote search capability consumed by the resolver
type VideoSearcher interface {
	Search(ctx context.Context, lessonTitle string, maxResults int) (*SearchResult, error)
}
