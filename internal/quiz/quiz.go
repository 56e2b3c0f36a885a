// Package quiz implements the quiz session state machine: ordered
// questions, a current index, reveal state and a running score.
// Progress recording is the caller's responsibility; the machine
// reports correctness and stays pure.
package quiz

import (
	"errors"
	"math"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/selector"
)

// ErrNoQuestions is returned when a session is started with no questions.
var ErrNoQuestions = errors.New("quiz: no questions to start a session with")

// Session tracks progression through a selected question set.
type Session struct {
	Questions []bank.Question
	Index     int
	Score     int
	Options   []string // shuffled options for the current question
	Selected  string   // empty until an option is chosen
	Revealed  bool
	Finished  bool
}

// Start creates a session over the given questions. The input must be
// non-empty; empty selections are surfaced to the user before a
// session is ever created.
func Start(questions []bank.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{Questions: questions}
	s.Options = shuffledOptions(questions[0])
	return s, nil
}

// Current returns the question at the current index.
func (s *Session) Current() bank.Question {
	return s.Questions[s.Index]
}

// SelectOption records the user's choice for the current question and
// reveals the answer. Selecting after reveal, or after the session
// finished, is a no-op; ok reports whether the selection was applied.
func (s *Session) SelectOption(option string) (correct, ok bool) {
	if s.Revealed || s.Finished {
		return false, false
	}

	correct = option == s.Current().Answer
	s.Selected = option
	s.Revealed = true
	if correct {
		s.Score++
	}
	return correct, true
}

// Advance moves to the next question, or finishes the session when the
// last question was answered. Advancing before reveal is a no-op.
func (s *Session) Advance() bool {
	if !s.Revealed || s.Finished {
		return false
	}

	if s.Index+1 == len(s.Questions) {
		s.Finished = true
		return true
	}

	s.Index++
	s.Revealed = false
	s.Selected = ""
	s.Options = shuffledOptions(s.Current())
	return true
}

// Percent returns the session score as a rounded percentage.
func (s *Session) Percent() int {
	return Percent(s.Score, len(s.Questions))
}

// Percent computes round(score/total*100), 0 when total is 0.
func Percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// shuffledOptions returns a random permutation of distractors + answer.
func shuffledOptions(q bank.Question) []string {
	options := make([]string, 0, len(q.Distractors)+1)
	options = append(options, q.Distractors...)
	options = append(options, q.Answer)
	return selector.ShuffleOptions(options)
}
