package domain

import (
	"context"
)

// LessonModel a single authored lesson. Lesson content is fixed at build time
// and never mutated at runtime
type LessonModel struct {
	ID       int    `json:"id"`
	Phase    int    `json:"phase"`
	Title    string `json:"title"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
}

// PhaseModel a 14-lesson stage of the curriculum. Rank is the learner
// title earned by finishing the phase
type PhaseModel struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Weeks       string `json:"weeks"`
	Rank        string `json:"rank"`
	Description string `json:"description"`
}

// PhaseOverviewModel phase metadata joined with completion stats
type PhaseOverviewModel struct {
	*PhaseModel
	LessonCount     int     `json:"lesson_count"`
	CompletedCount  int     `json:"completed_count"`
	ProgressPercent float64 `json:"progress_percent"`
}

// LessonDetailModel lesson joined with its progress record and completion criteria
type LessonDetailModel struct {
	*LessonModel
	Progress *LessonProgressModel `json:"progress"`
	Criteria *CompletionCriteria  `json:"criteria"`
}

type LessonRepository interface {
	GetByID(ctx context.Context, id int) (*LessonModel, error)
	ListByPhase(ctx context.Context, phase int) ([]*LessonModel, error)
	ListPhases(ctx context.Context) ([]*PhaseModel, error)
}

type LessonUseCase interface {
	GetPhaseOverview(ctx context.Context) ([]*PhaseOverviewModel, error)
	GetPhaseLessons(ctx context.Context, phase int) ([]*LessonDetailModel, error)
	GetLessonDetail(ctx context.Context, id int) (*LessonDetailModel, error)
}
