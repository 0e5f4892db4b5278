package lesson

import (
	"context"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/progress"
	"go.elastic.co/apm"
)

// UseCase ...
type UseCase struct {
	LessonRepository domain.LessonRepository
	ProgressStore    domain.ProgressStore
}

var _ domain.LessonUseCase = &UseCase{}

// NewUseCase ...
func NewUseCase(
	LessonRepository domain.LessonRepository,
	ProgressStore domain.ProgressStore,
) *UseCase {
	return &UseCase{
		LessonRepository: LessonRepository,
		ProgressStore:    ProgressStore,
	}
}

// GetPhaseOverview list every phase with its completion stats
func (lu *UseCase) GetPhaseOverview(ctx context.Context) ([]*domain.PhaseOverviewModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "UseCase.GetPhaseOverview", "service")
	defer apmSpan.End()

	phases, err := lu.LessonRepository.ListPhases(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PhaseOverviewModel, 0, len(phases))
	for _, phase := range phases {
		lessons, err := lu.LessonRepository.ListByPhase(ctx, phase.Number)
		if err != nil {
			return nil, err
		}

		completed := 0
		for _, entry := range lessons {
			if record := lu.ProgressStore.Get(entry.ID); record != nil && record.IsCompleted {
				completed++
			}
		}

		overview := &domain.PhaseOverviewModel{
			PhaseModel:     phase,
			LessonCount:    len(lessons),
			CompletedCount: completed,
		}
		if len(lessons) > 0 {
			overview.ProgressPercent = float64(completed) / float64(len(lessons)) * 100
		}
		result = append(result, overview)
	}
	return result, nil
}

// GetPhaseLessons list a phase's lessons merged with their progress records
func (lu *UseCase) GetPhaseLessons(ctx context.Context, phase int) ([]*domain.LessonDetailModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "UseCase.GetPhaseLessons", "service")
	defer apmSpan.End()

	lessons, err := lu.LessonRepository.ListByPhase(ctx, phase)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, domain.ErrNoSuchPhase
	}

	result := make([]*domain.LessonDetailModel, 0, len(lessons))
	for _, entry := range lessons {
		result = append(result, &domain.LessonDetailModel{
			LessonModel: entry,
			Progress:    lu.ProgressStore.Get(entry.ID),
			Criteria:    progress.CriteriaFor(entry.ID),
		})
	}
	return result, nil
}

// GetLessonDetail a single lesson with progress and completion criteria
func (lu *UseCase) GetLessonDetail(ctx context.Context, id int) (*domain.LessonDetailModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "UseCase.GetLessonDetail", "service")
	defer apmSpan.End()

	entry, err := lu.LessonRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNoSuchLesson
	}

	return &domain.LessonDetailModel{
		LessonModel: entry,
		Progress:    lu.ProgressStore.Get(id),
		Criteria:    progress.CriteriaFor(id),
	}, nil
}
