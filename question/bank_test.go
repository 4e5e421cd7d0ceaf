package question

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyTimeLimit(t *testing.T) {
	assert.Equal(t, 45, Easy.TimeLimit())
	assert.Equal(t, 30, Medium.TimeLimit())
	assert.Equal(t, 20, Hard.TimeLimit())
	assert.Equal(t, 30, Difficulty("bogus").TimeLimit(), "unknown difficulty falls back to medium")
}

func TestDrawIsSeedDeterministic(t *testing.T) {
	a := NewBank(pool, rand.NewSource(42))
	b := NewBank(pool, rand.NewSource(42))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Draw().Question, b.Draw().Question)
	}
}

func TestDrawCoversPool(t *testing.T) {
	bank := NewBank(pool, rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < bank.Len()*20; i++ {
		seen[bank.Draw().Question] = true
	}
	assert.Len(t, seen, bank.Len(), "every question should eventually be drawn")
}

func TestPoolIsWellFormed(t *testing.T) {
	bank := Default()
	require.Positive(t, bank.Len())

	for _, q := range pool {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4, q.Question)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0, q.Question)
		assert.Less(t, q.CorrectAnswer, len(q.Options), q.Question)
		assert.NotEmpty(t, q.Explanation, q.Question)
		assert.Contains(t, []Difficulty{Easy, Medium, Hard}, q.Difficulty, q.Question)
		assert.Positive(t, q.TimeLimitSeconds(), q.Question)
	}
}
