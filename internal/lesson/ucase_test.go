package lesson

import (
	"context"
	"testing"

	"github.com/barbian-academy/backend/internal/domain"
)

// staticRepository serves the embedded catalog without a database
type staticRepository struct{}

func (staticRepository) GetByID(ctx context.Context, id int) (*domain.LessonModel, error) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, nil
}

func (staticRepository) ListByPhase(ctx context.Context, phase int) ([]*domain.LessonModel, error) {
	var result []*domain.LessonModel
	for _, entry := range catalog {
		if entry.Phase == phase {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (staticRepository) ListPhases(ctx context.Context) ([]*domain.PhaseModel, error) {
	return phases, nil
}

type fakeStore struct {
	records map[int]*domain.LessonProgressModel
}

func (s *fakeStore) Record(ctx context.Context, lessonID int, patch *domain.ProgressPatch) (*domain.LessonProgressModel, error) {
	return nil, nil
}
func (s *fakeStore) Complete(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	return nil, nil
}
func (s *fakeStore) ForceComplete(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	return nil, nil
}
func (s *fakeStore) Reset(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	return nil, nil
}
func (s *fakeStore) Get(lessonID int) *domain.LessonProgressModel {
	return s.records[lessonID]
}
func (s *fakeStore) All() []*domain.LessonProgressModel { return nil }
func (s *fakeStore) TotalXP() int                       { return 0 }
func (s *fakeStore) CompletedCount() int                { return len(s.records) }

func completedRecord(id int) *domain.LessonProgressModel {
	return &domain.LessonProgressModel{LessonID: id, IsCompleted: true, VideoProgress: 100}
}

func TestCatalogShape(t *testing.T) {
	if len(catalog) != 70 {
		t.Fatalf("catalog holds %d lessons, want 70", len(catalog))
	}
	if len(phases) != 5 {
		t.Fatalf("catalog holds %d phases, want 5", len(phases))
	}

	perPhase := make(map[int]int)
	seen := make(map[int]bool)
	for _, entry := range catalog {
		if seen[entry.ID] {
			t.Errorf("duplicate lesson id %d", entry.ID)
		}
		seen[entry.ID] = true
		perPhase[entry.Phase]++
	}
	for _, phase := range phases {
		if perPhase[phase.Number] != 14 {
			t.Errorf("phase %d holds %d lessons, want 14", phase.Number, perPhase[phase.Number])
		}
	}
}

func TestGetPhaseOverviewStats(t *testing.T) {
	store := &fakeStore{records: map[int]*domain.LessonProgressModel{
		1: completedRecord(1),
		2: completedRecord(2),
		3: {LessonID: 3, VideoProgress: 40}, // started, not completed
	}}
	ucase := NewUseCase(staticRepository{}, store)

	overview, err := ucase.GetPhaseOverview(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(overview) != 5 {
		t.Fatalf("got %d phases, want 5", len(overview))
	}

	first := overview[0]
	if first.CompletedCount != 2 {
		t.Errorf("phase 1 completed = %d, want 2", first.CompletedCount)
	}
	if first.LessonCount != 14 {
		t.Errorf("phase 1 lesson count = %d, want 14", first.LessonCount)
	}
	want := 2.0 / 14 * 100
	if first.ProgressPercent != want {
		t.Errorf("phase 1 progress = %v, want %v", first.ProgressPercent, want)
	}
	if overview[1].CompletedCount != 0 {
		t.Errorf("phase 2 completed = %d, want 0", overview[1].CompletedCount)
	}
}

func TestGetPhaseLessonsMergesProgress(t *testing.T) {
	store := &fakeStore{records: map[int]*domain.LessonProgressModel{
		15: completedRecord(15),
	}}
	ucase := NewUseCase(staticRepository{}, store)

	lessons, err := ucase.GetPhaseLessons(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 14 {
		t.Fatalf("got %d lessons, want 14", len(lessons))
	}
	if lessons[0].Progress == nil || !lessons[0].Progress.IsCompleted {
		t.Error("lesson 15 progress not merged")
	}
	if lessons[1].Progress != nil {
		t.Error("untouched lesson carries a progress record")
	}
	if lessons[13].Criteria.MinWatchPercentage != 95 {
		t.Errorf("lesson 28 criteria = %v, want the evaluation threshold", lessons[13].Criteria.MinWatchPercentage)
	}
}

func TestGetPhaseLessonsUnknownPhase(t *testing.T) {
	ucase := NewUseCase(staticRepository{}, &fakeStore{})
	if _, err := ucase.GetPhaseLessons(context.Background(), 9); err != domain.ErrNoSuchPhase {
		t.Errorf("err = %v, want ErrNoSuchPhase", err)
	}
}

func TestGetLessonDetail(t *testing.T) {
	ucase := NewUseCase(staticRepository{}, &fakeStore{})

	detail, err := ucase.GetLessonDetail(context.Background(), 13)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Title != "Desafío Semanal: Arma tu kit de barbero" {
		t.Errorf("title = %q", detail.Title)
	}
	if detail.Criteria.XPReward != 25 {
		t.Errorf("challenge reward = %d, want 25", detail.Criteria.XPReward)
	}

	if _, err := ucase.GetLessonDetail(context.Background(), 999); err != domain.ErrNoSuchLesson {
		t.Errorf("err = %v, want ErrNoSuchLesson", err)
	}
}
