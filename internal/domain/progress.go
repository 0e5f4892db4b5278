package domain

import (
	"context"
	"time"
)

// LessonProgressModel per-lesson learning state, keyed by lesson ID.
//
// IsCompleted implies HasWatchedVideo: either the watch threshold was
// observed at some point, or completion was forced through the
// no-video escape hatch
type LessonProgressModel struct {
	LessonID        int        `json:"lessonId"`
	VideoProgress   float64    `json:"videoProgress"`
	HasWatchedVideo bool       `json:"hasWatchedVideo"`
	IsCompleted     bool       `json:"isCompleted"`
	XPEarned        int        `json:"xpEarned"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// ProgressPatch partial update applied to a lesson record. Nil fields are
// left untouched; set fields win in call order
type ProgressPatch struct {
	VideoProgress   *float64 `json:"videoProgress"`
	HasWatchedVideo *bool    `json:"hasWatchedVideo"`
}

// CompletionCriteria requirements derived from a lesson identifier.
// Recomputed on demand, never stored
type CompletionCriteria struct {
	MinWatchPercentage float64 `json:"minWatchPercentage"`
	RequiresQuiz       bool    `json:"requiresQuiz"`
	XPReward           int     `json:"xpReward"`
}

// CompletionReward presentational reward attached to a completion response
type CompletionReward struct {
	XP      int    `json:"xp"`
	Badge   string `json:"badge,omitempty"`
	Message string `json:"message"`
}

// ProgressStore owns every LessonProgressModel for the current client.
// All mutation goes through this interface
type ProgressStore interface {
	Record(ctx context.Context, lessonID int, patch *ProgressPatch) (*LessonProgressModel, error)
	Complete(ctx context.Context, lessonID int) (*LessonProgressModel, error)
	ForceComplete(ctx context.Context, lessonID int) (*LessonProgressModel, error)
	Reset(ctx context.Context, lessonID int) (*LessonProgressModel, error)
	Get(lessonID int) *LessonProgressModel
	All() []*LessonProgressModel
	TotalXP() int
	CompletedCount() int
}
