// stats/tracker.go
package stats

import (
	"math"
	"sync"

	"github.com/quizopoly/gameserver/logger"
)

// Record is the cumulative trivia record for one display name.
type Record struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	Accuracy          int `json:"accuracy"`
	TotalEarnings     int `json:"totalEarnings"`
	TotalTime         int `json:"totalTime"`
	AverageTime       int `json:"averageTime"`
}

// Sink receives stats writes for optional external storage.
type Sink interface {
	SavePlayerStats(name string, rec Record) error
}

// Tracker accumulates per-name stats for the whole process, independent of
// room lifetime. Records are keyed by display name: two connections using
// the same name share one record. That mirrors the original behavior and is
// intentional, not a bug to fix here.
type Tracker struct {
	mu      sync.RWMutex
	records map[string]*Record
	sink    Sink
	reward  int
}

// NewTracker builds an empty tracker. reward is the per-correct-answer
// earning credited to TotalEarnings.
func NewTracker(reward int) *Tracker {
	return &Tracker{
		records: make(map[string]*Record),
		reward:  reward,
	}
}

// SetSink attaches an optional write-behind store. Records are never read
// back; the in-memory map stays canonical.
func (t *Tracker) SetSink(s Sink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = s
}

// Ensure creates the record for a name on its first appearance.
func (t *Tracker) Ensure(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.records[name]; !ok {
		t.records[name] = &Record{}
	}
}

// RecordOutcome records one answered question. timeTaken is in whole
// seconds. Accuracy and average time are recomputed on every update so
// replaying the same outcome sequence always yields identical derived
// values.
func (t *Tracker) RecordOutcome(name string, correct bool, timeTaken int) Record {
	t.mu.Lock()

	rec, ok := t.records[name]
	if !ok {
		rec = &Record{}
		t.records[name] = rec
	}

	rec.QuestionsAnswered++
	if correct {
		rec.CorrectAnswers++
		rec.TotalEarnings += t.reward
	}
	rec.TotalTime += timeTaken
	rec.Accuracy = int(math.Round(float64(rec.CorrectAnswers) / float64(rec.QuestionsAnswered) * 100))
	rec.AverageTime = int(math.Round(float64(rec.TotalTime) / float64(rec.QuestionsAnswered)))

	snapshot := *rec
	sink := t.sink
	t.mu.Unlock()

	if sink != nil {
		if err := sink.SavePlayerStats(name, snapshot); err != nil {
			logger.Log.Warnf("Failed to persist stats for %s: %v", name, err)
		}
	}
	return snapshot
}

// Get returns the record for a name.
func (t *Tracker) Get(name string) (Record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.records[name]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// ForNames returns the records for a set of names, such as one room's
// roster. Names with no record yet come back zeroed.
func (t *Tracker) ForNames(names []string) map[string]Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Record, len(names))
	for _, name := range names {
		if rec, ok := t.records[name]; ok {
			out[name] = *rec
		} else {
			out[name] = Record{}
		}
	}
	return out
}
