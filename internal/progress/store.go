package progress

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/driver"
	"go.uber.org/zap"
)

// StoreOption knobs for the progress store
type StoreOption struct {
	// StorageKey KV key holding the serialized record set
	StorageKey string
	// CompletionThreshold watch percentage recorded on completion
	CompletionThreshold float64
	// OverrideXPPercent XP share (0-100) awarded by ForceComplete
	OverrideXPPercent int
}

// Store keeps every lesson progress record for the current client and
// rewrites the whole set to durable KV storage on each mutation.
// Absence or corruption of the stored blob yields an empty set, the data is
// reconstructible by replaying lesson interactions
type Store struct {
	mu      sync.Mutex
	records map[int]*domain.LessonProgressModel
	kv      driver.KeyValueDB
	option  *StoreOption
	logger  *zap.Logger
	now     func() time.Time
}

var _ domain.ProgressStore = &Store{}

// NewStore create a Store and rehydrate it from the last written blob
func NewStore(kv driver.KeyValueDB, option *StoreOption, logger *zap.Logger) *Store {
	store := &Store{
		records: make(map[int]*domain.LessonProgressModel),
		kv:      kv,
		option:  option,
		logger:  logger,
		now:     time.Now,
	}
	store.load()
	return store
}

func (s *Store) load() {
	blob, err := s.kv.Get(s.option.StorageKey)
	if err != nil {
		if !driver.IsNilError(err) {
			s.logger.Warn("Failed to load lesson progress, starting empty",
				zap.String("kv.key", s.option.StorageKey),
				zap.Error(err))
		}
		return
	}
	records := make(map[int]*domain.LessonProgressModel)
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		s.logger.Warn("Corrupted lesson progress blob, starting empty",
			zap.String("kv.key", s.option.StorageKey),
			zap.Error(err))
		return
	}
	s.records = records
}

// persist serialize the whole record set, caller must hold the lock
func (s *Store) persist() error {
	blob, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return s.kv.Set(s.option.StorageKey, string(blob))
}

// record fetch or lazily create a record, caller must hold the lock
func (s *Store) record(lessonID int) *domain.LessonProgressModel {
	if rec, ok := s.records[lessonID]; ok {
		return rec
	}
	rec := &domain.LessonProgressModel{LessonID: lessonID}
	s.records[lessonID] = rec
	return rec
}

// Record merge a partial update into the lesson record, creating it with
// zero defaults when absent. Last write wins per field. Recording never
// fails: when the KV write misses, the in-memory record still advances
// and the next successful write carries it
func (s *Store) Record(ctx context.Context, lessonID int, patch *domain.ProgressPatch) (*domain.LessonProgressModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(lessonID)
	if patch != nil {
		if patch.VideoProgress != nil {
			rec.VideoProgress = clampPercent(*patch.VideoProgress)
		}
		if patch.HasWatchedVideo != nil {
			rec.HasWatchedVideo = *patch.HasWatchedVideo
		}
	}
	if err := s.persist(); err != nil {
		s.logger.Warn("Failed to persist lesson progress, keeping in-memory record",
			zap.Int("lesson.id", lessonID),
			zap.Error(err))
	}
	return copyRecord(rec), nil
}

// Complete mark the lesson completed and award XP per the completion policy.
// Idempotent: re-applying yields the same record, never an additive award
func (s *Store) Complete(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	return s.complete(lessonID, 100)
}

// ForceComplete the escape hatch for the no-video degraded mode. The watched
// flag is still set so the completion invariant holds, XP is scaled by the
// configured override share
func (s *Store) ForceComplete(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	return s.complete(lessonID, s.option.OverrideXPPercent)
}

func (s *Store) complete(lessonID int, xpPercent int) (*domain.LessonProgressModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(lessonID)
	rec.IsCompleted = true
	rec.HasWatchedVideo = true
	if rec.VideoProgress < s.option.CompletionThreshold {
		rec.VideoProgress = s.option.CompletionThreshold
	}
	rec.XPEarned = CriteriaFor(lessonID).XPReward * xpPercent / 100
	if rec.CompletedAt == nil {
		at := s.now()
		rec.CompletedAt = &at
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	return copyRecord(rec), nil
}

// Reset zero the record for one lesson, destroying its completion history
func (s *Store) Reset(ctx context.Context, lessonID int) (*domain.LessonProgressModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &domain.LessonProgressModel{LessonID: lessonID}
	s.records[lessonID] = rec
	if err := s.persist(); err != nil {
		return nil, err
	}
	return copyRecord(rec), nil
}

// Get return a copy of the lesson record, nil if the lesson was never touched
func (s *Store) Get(lessonID int) *domain.LessonProgressModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[lessonID]; ok {
		return copyRecord(rec)
	}
	return nil
}

// All return copies of every record, ordered by lesson ID
func (s *Store) All() []*domain.LessonProgressModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.LessonProgressModel, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, copyRecord(rec))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LessonID < result[j].LessonID
	})
	return result
}

// TotalXP sum of XP earned across all records
func (s *Store) TotalXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, rec := range s.records {
		total += rec.XPEarned
	}
	return total
}

// CompletedCount number of completed lessons
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, rec := range s.records {
		if rec.IsCompleted {
			count++
		}
	}
	return count
}

func copyRecord(rec *domain.LessonProgressModel) *domain.LessonProgressModel {
	clone := *rec
	if rec.CompletedAt != nil {
		at := *rec.CompletedAt
		clone.CompletedAt = &at
	}
	return &clone
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
