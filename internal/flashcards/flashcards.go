// Package flashcards implements the flashcard session state machine:
// a queue of cards cycled until each is marked learned.
package flashcards

import "github.com/abhisek/sprinklerprep/internal/bank"

// Outcome is the user's verdict on the front card.
type Outcome string

const (
	// OutcomeLearned removes the card from the deck.
	OutcomeLearned Outcome = "learned"
	// OutcomeReview moves the card to the back of the deck.
	OutcomeReview Outcome = "review"
)

// Session is a flashcard run over a selected card set.
type Session struct {
	Queue   []bank.Question
	Learned int
}

// Start creates a session over the given cards. An empty deck is a
// valid (immediately complete) session.
func Start(cards []bank.Question) *Session {
	queue := make([]bank.Question, len(cards))
	copy(queue, cards)
	return &Session{Queue: queue}
}

// Current returns the front card, or false when the deck is empty.
func (s *Session) Current() (bank.Question, bool) {
	if len(s.Queue) == 0 {
		return bank.Question{}, false
	}
	return s.Queue[0], true
}

// Result pops the front card and applies the outcome: learned cards
// are discarded and counted, review cards cycle to the back. Calling
// on an empty deck is a no-op; ok reports whether a card was popped.
func (s *Session) Result(outcome Outcome) (card bank.Question, ok bool) {
	if len(s.Queue) == 0 {
		return bank.Question{}, false
	}

	card = s.Queue[0]
	s.Queue = s.Queue[1:]

	if outcome == OutcomeLearned {
		s.Learned++
	} else {
		s.Queue = append(s.Queue, card)
	}
	return card, true
}

// Done reports whether every card has been marked learned.
func (s *Session) Done() bool {
	return len(s.Queue) == 0
}

// Remaining returns the number of cards still in the deck.
func (s *Session) Remaining() int {
	return len(s.Queue)
}
