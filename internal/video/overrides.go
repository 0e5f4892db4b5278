package video

import (
	"encoding/json"
	"sync"

	"github.com/barbian-academy/backend/internal/infrastructure/driver"
	"go.uber.org/zap"
)

// OverrideTable manually curated lesson-to-video pins, persisted as a JSON
// blob under its own KV key. Absence or corruption means no overrides
type OverrideTable struct {
	mu      sync.RWMutex
	entries map[int]string
	kv      driver.KeyValueDB
	key     string
	logger  *zap.Logger
}

// NewOverrideTable load the curated map from KV storage
func NewOverrideTable(kv driver.KeyValueDB, key string, logger *zap.Logger) *OverrideTable {
	table := &OverrideTable{
		entries: make(map[int]string),
		kv:      kv,
		key:     key,
		logger:  logger,
	}
	table.load()
	return table
}

func (ot *OverrideTable) load() {
	blob, err := ot.kv.Get(ot.key)
	if err != nil {
		if !driver.IsNilError(err) {
			ot.logger.Warn("Failed to load curated video map",
				zap.String("kv.key", ot.key),
				zap.Error(err))
		}
		return
	}
	entries := make(map[int]string)
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		ot.logger.Warn("Corrupted curated video map, ignoring",
			zap.String("kv.key", ot.key),
			zap.Error(err))
		return
	}
	ot.entries = entries
}

// Lookup return the pinned video ID for a lesson
func (ot *OverrideTable) Lookup(lessonID int) (string, bool) {
	ot.mu.RLock()
	defer ot.mu.RUnlock()
	videoID, ok := ot.entries[lessonID]
	return videoID, ok
}

// Set pin a video ID to a lesson and persist the table
func (ot *OverrideTable) Set(lessonID int, videoID string) error {
	ot.mu.Lock()
	defer ot.mu.Unlock()

	ot.entries[lessonID] = videoID
	blob, err := json.Marshal(ot.entries)
	if err != nil {
		return err
	}
	return ot.kv.Set(ot.key, string(blob))
}
