package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressItem = "progress"

// SavedProgress is the run history stored on disk, keyed by level path.
type SavedProgress struct {
	Levels map[string]LevelProgress `json:"levels"`
}

type LevelProgress struct {
	BestScore int `json:"bestScore"`
	Clears    int `json:"clears"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "platformer",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads the saved progress. Missing or unreadable data yields
// empty progress.
func LoadProgress() SavedProgress {
	progress := SavedProgress{Levels: map[string]LevelProgress{}}
	if !gdataInitialized || gdataManager == nil {
		return progress
	}

	data, err := gdataManager.LoadItem(progressItem)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return progress
	}
	if len(data) == 0 {
		return progress
	}

	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return SavedProgress{Levels: map[string]LevelProgress{}}
	}
	if progress.Levels == nil {
		progress.Levels = map[string]LevelProgress{}
	}
	return progress
}

// BestScore returns the best recorded score for level.
func BestScore(level string) int {
	return LoadProgress().Levels[level].BestScore
}

// RecordClear counts a clear of level and keeps the higher score. It returns
// the best score after the update.
func RecordClear(level string, score int) int {
	progress := LoadProgress()
	lp := progress.Levels[level]
	lp.Clears++
	lp.BestScore = max(lp.BestScore, score)
	progress.Levels[level] = lp

	_ = saveProgress(progress)
	return lp.BestScore
}

func saveProgress(p SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressItem, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}
