package testutil

import (
	"errors"
	"sync"
)

// ErrScriptExhausted is returned when a ScriptedConfirmer is asked more
// questions than it has answers for.
var ErrScriptExhausted = errors.New("testutil: no scripted answer left")

// ScriptedConfirmer answers yes/no questions from a fixed script and records
// every question it was asked.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ScriptedConfirmer struct {
	mu        sync.Mutex
	answers   []bool
	questions []string
}

// NewScriptedConfirmer creates a confirmer that returns answers in order.
func NewScriptedConfirmer(answers ...bool) *ScriptedConfirmer {
	return &ScriptedConfirmer{answers: answers}
}

// Confirm records question and returns the next scripted answer.
func (c *ScriptedConfirmer) Confirm(question string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions = append(c.questions, question)
	if len(c.answers) == 0 {
		return false, ErrScriptExhausted
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

// Questions returns a copy of the questions asked so far.
func (c *ScriptedConfirmer) Questions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.questions...)
}

// Asked reports how many questions were asked.
func (c *ScriptedConfirmer) Asked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.questions)
}
