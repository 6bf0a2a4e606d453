package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedConfirmer_AnswersInOrder(t *testing.T) {
	c := NewScriptedConfirmer(true, false)

	ok, err := c.Confirm("first?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Confirm("second?")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{"first?", "second?"}, c.Questions())
}

func TestScriptedConfirmer_Exhausted(t *testing.T) {
	c := NewScriptedConfirmer()

	ok, err := c.Confirm("anything?")
	assert.ErrorIs(t, err, ErrScriptExhausted)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Asked())
}

func TestScriptedConfirmer_QuestionsIsCopy(t *testing.T) {
	c := NewScriptedConfirmer(true)
	_, _ = c.Confirm("q?")

	qs := c.Questions()
	qs[0] = "changed"
	assert.Equal(t, []string{"q?"}, c.Questions())
}

func TestScriptedConfirmer_ThreadSafe(t *testing.T) {
	const n = 50
	answers := make([]bool, n)
	for i := range answers {
		answers[i] = i%2 == 0
	}
	c := NewScriptedConfirmer(answers...)

	var wg sync.WaitGroup
	var mu sync.Mutex
	yes := 0
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ok, err := c.Confirm("q?")
			if err == nil && ok {
				mu.Lock()
				yes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, c.Asked())
	assert.Equal(t, n/2, yes)
}
