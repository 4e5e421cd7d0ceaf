// question/bank.go
package question

import (
	"math/rand"
	"sync"
	"time"
)

// Difficulty controls how long a player gets to answer.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// TimeLimit returns the answer window in seconds for a difficulty.
func (d Difficulty) TimeLimit() int {
	switch d {
	case Easy:
		return 45
	case Medium:
		return 30
	case Hard:
		return 20
	}
	return 30
}

// Record is one immutable trivia question.
type Record struct {
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
}

// TimeLimitSeconds is the countdown length for this question.
func (r Record) TimeLimitSeconds() int {
	return r.Difficulty.TimeLimit()
}

// Bank holds the flattened question pool and draws uniformly from it.
type Bank struct {
	records []Record
	rng     *rand.Rand
	mu      sync.Mutex
}

// NewBank builds a bank over the given pool. A nil source seeds from the
// clock.
func NewBank(records []Record, src rand.Source) *Bank {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Bank{
		records: records,
		rng:     rand.New(src),
	}
}

// Default returns a bank over the built-in question pool.
func Default() *Bank {
	return NewBank(pool, nil)
}

// Draw picks one question uniformly at random from the flattened pool.
func (b *Bank) Draw() Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.records[b.rng.Intn(len(b.records))]
}

// Len reports the pool size.
func (b *Bank) Len() int {
	return len(b.records)
}
