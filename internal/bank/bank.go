package bank

import "sort"

// Difficulty is the question difficulty rating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// SprinklerType tags a question with the system type it covers.
// "General" and "N/A" mark questions not tied to a specific system.
type SprinklerType string

const (
	TypeStandardSpray SprinklerType = "Standard Spray"
	TypeResidential   SprinklerType = "Residential"
	TypeESFRStorage   SprinklerType = "ESFR/Storage"
	TypeDryPreaction  SprinklerType = "Dry/Preaction"
	TypeGeneral       SprinklerType = "General"
	TypeNA            SprinklerType = "N/A"
)

// Question is a single exam question. Questions are loaded once at
// startup and never mutated afterwards.
type Question struct {
	ID            int           `json:"id"`
	Category      string        `json:"category"`
	Topic         string        `json:"topic"`
	Question      string        `json:"question"`
	Answer        string        `json:"answer"`
	Distractors   []string      `json:"distractors"`
	Citation      string        `json:"citation"`
	CodeText      string        `json:"code_text"`
	IsMNAmendment bool          `json:"is_mn_amendment,omitempty"`
	Mnemonic      string        `json:"mnemonic,omitempty"`
	MathLogic     string        `json:"math_logic,omitempty"`
	Difficulty    Difficulty    `json:"difficulty"`
	SprinklerType SprinklerType `json:"sprinklerType"`
}

// Bank is the immutable in-memory question collection.
type Bank struct {
	questions []Question
}

// New creates a Bank from the given questions.
func New(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Empty returns a Bank with no questions. The application runs in a
// degraded state against an empty bank rather than refusing to start.
func Empty() *Bank {
	return &Bank{}
}

// Questions returns the full question list. Callers must not mutate it.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Categories returns the sorted set of distinct categories.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	sort.Strings(out)
	return out
}

// SprinklerTypes returns the sorted set of distinct sprinkler types.
func (b *Bank) SprinklerTypes() []SprinklerType {
	seen := make(map[SprinklerType]bool)
	var out []SprinklerType
	for _, q := range b.questions {
		if !seen[q.SprinklerType] {
			seen[q.SprinklerType] = true
			out = append(out, q.SprinklerType)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
