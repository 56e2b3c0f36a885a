// Package progress owns the durable user-progress record. All
// mutations flow through the Tracker, which derives a new record,
// keeps it as the in-memory source of truth, and persists the full
// serialized record after every change.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

// CategoryStats is the per-category answer aggregate.
type CategoryStats struct {
	Answered         int    `json:"answered"`
	Correct          int    `json:"correct"`
	Streak           int    `json:"streak"`
	MasteryLevel     int    `json:"masteryLevel"`
	LastAnsweredDate string `json:"lastAnsweredDate,omitempty"`
}

// UserProgress is the durable aggregate root.
type UserProgress struct {
	TotalQuestionsAnswered int                      `json:"totalQuestionsAnswered"`
	TotalCorrect           int                      `json:"totalCorrect"`
	FlashcardsLearned      int                      `json:"flashcardsLearned"`
	StatsByCategory        map[string]CategoryStats `json:"statsByCategory"`
	MissedQuestionIDs      []int                    `json:"missedQuestionIds"`
	TargetExamDate         *string                  `json:"targetExamDate"`
}

// Repo persists the serialized progress record as a single value.
type Repo interface {
	// LoadProgress returns the stored record bytes, or (nil, nil) when
	// no record exists yet.
	LoadProgress(ctx context.Context) ([]byte, error)

	// SaveProgress overwrites the stored record wholesale.
	SaveProgress(ctx context.Context, data []byte) error
}

// Tracker applies progress mutations and persists after each one.
// Persistence is best effort: write failures are logged and the
// in-memory record stays authoritative for the rest of the session.
type Tracker struct {
	repo    Repo
	current UserProgress
	now     func() time.Time
}

// NewTracker loads the stored record (or defaults) and returns a
// ready Tracker. Load failures never propagate; they degrade to a
// fresh record.
func NewTracker(ctx context.Context, repo Repo) *Tracker {
	t := &Tracker{repo: repo, now: time.Now}
	t.current = load(ctx, repo)
	return t
}

// Current returns a snapshot of the progress record.
func (t *Tracker) Current() UserProgress {
	return clone(t.current)
}

// RecordAnswer records a quiz answer: totals, the category aggregate,
// and the missed-question set. Returns the updated record.
func (t *Tracker) RecordAnswer(ctx context.Context, correct bool, q bank.Question) UserProgress {
	t.current = applyAnswer(t.current, correct, q, t.now())
	t.persist(ctx)
	return clone(t.current)
}

// RecordFlashcardLearned increments the learned-card total.
func (t *Tracker) RecordFlashcardLearned(ctx context.Context) UserProgress {
	next := clone(t.current)
	next.FlashcardsLearned++
	t.current = next
	t.persist(ctx)
	return clone(t.current)
}

// SetTargetDate overwrites the target exam date (nil clears it).
func (t *Tracker) SetTargetDate(ctx context.Context, date *string) UserProgress {
	next := clone(t.current)
	next.TargetExamDate = date
	t.current = next
	t.persist(ctx)
	return clone(t.current)
}

// applyAnswer derives the next record from one quiz answer.
func applyAnswer(p UserProgress, correct bool, q bank.Question, now time.Time) UserProgress {
	next := clone(p)

	next.TotalQuestionsAnswered++
	if correct {
		next.TotalCorrect++
	}

	stats := next.StatsByCategory[q.Category]
	stats.Answered++
	if correct {
		stats.Correct++
		stats.Streak++
	} else {
		stats.Streak = 0
	}
	stats.MasteryLevel = MasteryLevel(stats.Correct, stats.Answered)
	stats.LastAnsweredDate = now.UTC().Format(time.RFC3339)
	next.StatsByCategory[q.Category] = stats

	// A question is missed iff its most recent answer was incorrect.
	if correct {
		next.MissedQuestionIDs = removeID(next.MissedQuestionIDs, q.ID)
	} else if !containsID(next.MissedQuestionIDs, q.ID) {
		next.MissedQuestionIDs = append(next.MissedQuestionIDs, q.ID)
	}

	return next
}

// MasteryLevel is the derived accuracy percentage for a category.
// It is always recomputed from correct/answered, never stored
// independently.
func MasteryLevel(correct, answered int) int {
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

// Default returns the zeroed record used on first run.
func Default() UserProgress {
	return UserProgress{
		StatsByCategory:   map[string]CategoryStats{},
		MissedQuestionIDs: []int{},
	}
}

// load reads the stored record, backfilling fields missing from older
// schema versions. Absent or unparseable records yield defaults.
func load(ctx context.Context, repo Repo) UserProgress {
	data, err := repo.LoadProgress(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load progress:", err)
		return Default()
	}
	if data == nil {
		return Default()
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Fprintln(os.Stderr, "warning: corrupt progress record, starting fresh:", err)
		return Default()
	}
	return normalize(p)
}

// normalize backfills fields a pre-upgrade record may lack: nil
// collections become empty, and masteryLevel is recomputed so it can
// never drift from correct/answered.
func normalize(p UserProgress) UserProgress {
	if p.StatsByCategory == nil {
		p.StatsByCategory = map[string]CategoryStats{}
	}
	if p.MissedQuestionIDs == nil {
		p.MissedQuestionIDs = []int{}
	}
	for cat, stats := range p.StatsByCategory {
		stats.MasteryLevel = MasteryLevel(stats.Correct, stats.Answered)
		p.StatsByCategory[cat] = stats
	}
	return p
}

func (t *Tracker) persist(ctx context.Context) {
	data, err := json.Marshal(t.current)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to serialize progress:", err)
		return
	}
	if err := t.repo.SaveProgress(ctx, data); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to save progress:", err)
	}
}

func clone(p UserProgress) UserProgress {
	out := p
	out.StatsByCategory = make(map[string]CategoryStats, len(p.StatsByCategory))
	for k, v := range p.StatsByCategory {
		out.StatsByCategory[k] = v
	}
	out.MissedQuestionIDs = append([]int(nil), p.MissedQuestionIDs...)
	if out.MissedQuestionIDs == nil {
		out.MissedQuestionIDs = []int{}
	}
	if p.TargetExamDate != nil {
		d := *p.TargetExamDate
		out.TargetExamDate = &d
	}
	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
