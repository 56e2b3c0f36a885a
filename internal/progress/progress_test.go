package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

func (r *memRepo) LoadProgress(context.Context) ([]byte, error) {
	return r.data, r.loadErr
}

func (r *memRepo) SaveProgress(_ context.Context, data []byte) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.data = data
	r.saves++
	return nil
}

func newTestTracker(t *testing.T, repo *memRepo) *Tracker {
	t.Helper()
	tr := NewTracker(context.Background(), repo)
	tr.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return tr
}

func question(id int, category string) bank.Question {
	return bank.Question{ID: id, Category: category, Question: "q", Answer: "a"}
}

func TestNewTracker_FreshRecord(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	p := tr.Current()

	if p.TotalQuestionsAnswered != 0 || p.TotalCorrect != 0 || p.FlashcardsLearned != 0 {
		t.Error("expected zeroed totals")
	}
	if p.StatsByCategory == nil || p.MissedQuestionIDs == nil {
		t.Error("expected initialized collections")
	}
	if p.TargetExamDate != nil {
		t.Error("expected nil target date")
	}
}

func TestNewTracker_CorruptRecordFallsBack(t *testing.T) {
	tr := newTestTracker(t, &memRepo{data: []byte(`{not json`)})
	p := tr.Current()
	if p.TotalQuestionsAnswered != 0 {
		t.Error("expected defaults after corrupt record")
	}
}

func TestNewTracker_LoadErrorFallsBack(t *testing.T) {
	tr := newTestTracker(t, &memRepo{loadErr: errors.New("disk gone")})
	p := tr.Current()
	if p.TotalQuestionsAnswered != 0 {
		t.Error("expected defaults after load error")
	}
}

func TestNewTracker_BackfillsOlderRecord(t *testing.T) {
	// A record written before flashcards and missed tracking existed.
	old := []byte(`{"totalQuestionsAnswered":5,"totalCorrect":3,"statsByCategory":{"NFPA 13 - Installation":{"answered":5,"correct":3,"streak":1,"masteryLevel":999}}}`)
	tr := newTestTracker(t, &memRepo{data: old})
	p := tr.Current()

	if p.TotalQuestionsAnswered != 5 || p.TotalCorrect != 3 {
		t.Error("expected preserved totals")
	}
	if p.MissedQuestionIDs == nil {
		t.Error("expected missed IDs backfilled to empty slice")
	}
	// masteryLevel is derived, so the bogus stored value is replaced.
	if got := p.StatsByCategory["NFPA 13 - Installation"].MasteryLevel; got != 60 {
		t.Errorf("expected mastery 60, got %d", got)
	}
}

func TestRecordAnswer_Correct(t *testing.T) {
	repo := &memRepo{}
	tr := newTestTracker(t, repo)

	p := tr.RecordAnswer(context.Background(), true, question(1, "MN Amendments"))

	if p.TotalQuestionsAnswered != 1 || p.TotalCorrect != 1 {
		t.Errorf("unexpected totals: %+v", p)
	}
	stats := p.StatsByCategory["MN Amendments"]
	if stats.Answered != 1 || stats.Correct != 1 || stats.Streak != 1 {
		t.Errorf("unexpected category stats: %+v", stats)
	}
	if stats.MasteryLevel != 100 {
		t.Errorf("expected mastery 100, got %d", stats.MasteryLevel)
	}
	if stats.LastAnsweredDate == "" {
		t.Error("expected last answered date to be set")
	}
	if len(p.MissedQuestionIDs) != 0 {
		t.Errorf("expected no missed IDs, got %v", p.MissedQuestionIDs)
	}
	if repo.saves != 1 {
		t.Errorf("expected 1 persist, got %d", repo.saves)
	}
}

func TestRecordAnswer_WrongResetsStreakAndMarksMissed(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	ctx := context.Background()

	tr.RecordAnswer(ctx, true, question(1, "Hydraulics & Math"))
	tr.RecordAnswer(ctx, true, question(2, "Hydraulics & Math"))
	p := tr.RecordAnswer(ctx, false, question(3, "Hydraulics & Math"))

	stats := p.StatsByCategory["Hydraulics & Math"]
	if stats.Streak != 0 {
		t.Errorf("expected streak reset to 0, got %d", stats.Streak)
	}
	if stats.Answered != 3 || stats.Correct != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.MasteryLevel != 67 {
		t.Errorf("expected mastery 67, got %d", stats.MasteryLevel)
	}
	if len(p.MissedQuestionIDs) != 1 || p.MissedQuestionIDs[0] != 3 {
		t.Errorf("expected missed [3], got %v", p.MissedQuestionIDs)
	}
}

func TestRecordAnswer_MissedFollowsLatestAnswer(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	ctx := context.Background()
	q := question(7, "NFPA 25 - ITM")

	p := tr.RecordAnswer(ctx, false, q)
	if len(p.MissedQuestionIDs) != 1 {
		t.Fatalf("expected question marked missed, got %v", p.MissedQuestionIDs)
	}

	// A second wrong answer must not duplicate the ID.
	p = tr.RecordAnswer(ctx, false, q)
	if len(p.MissedQuestionIDs) != 1 {
		t.Fatalf("expected no duplicate, got %v", p.MissedQuestionIDs)
	}

	// A correct answer clears it.
	p = tr.RecordAnswer(ctx, true, q)
	if len(p.MissedQuestionIDs) != 0 {
		t.Fatalf("expected missed cleared, got %v", p.MissedQuestionIDs)
	}
}

func TestRecordAnswer_PersistFailureKeepsInMemoryState(t *testing.T) {
	tr := newTestTracker(t, &memRepo{saveErr: errors.New("readonly fs")})

	p := tr.RecordAnswer(context.Background(), true, question(1, "MN Amendments"))
	if p.TotalQuestionsAnswered != 1 {
		t.Error("expected in-memory record updated despite persist failure")
	}
	if tr.Current().TotalQuestionsAnswered != 1 {
		t.Error("expected tracker state to remain authoritative")
	}
}

func TestRecordFlashcardLearned(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	ctx := context.Background()

	tr.RecordFlashcardLearned(ctx)
	p := tr.RecordFlashcardLearned(ctx)
	if p.FlashcardsLearned != 2 {
		t.Errorf("expected 2 learned, got %d", p.FlashcardsLearned)
	}
}

func TestSetTargetDate(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	ctx := context.Background()

	date := "2026-03-20"
	p := tr.SetTargetDate(ctx, &date)
	if p.TargetExamDate == nil || *p.TargetExamDate != date {
		t.Errorf("expected target date set, got %v", p.TargetExamDate)
	}

	p = tr.SetTargetDate(ctx, nil)
	if p.TargetExamDate != nil {
		t.Errorf("expected target date cleared, got %v", p.TargetExamDate)
	}
}

func TestPersistedRecordRoundTrips(t *testing.T) {
	repo := &memRepo{}
	tr := newTestTracker(t, repo)
	ctx := context.Background()

	tr.RecordAnswer(ctx, true, question(1, "MN Amendments"))
	tr.RecordAnswer(ctx, false, question(2, "NFPA 25 - ITM"))
	date := "2026-06-18"
	tr.SetTargetDate(ctx, &date)

	var stored UserProgress
	if err := json.Unmarshal(repo.data, &stored); err != nil {
		t.Fatalf("stored record is not valid JSON: %v", err)
	}
	if stored.TotalQuestionsAnswered != 2 || stored.TotalCorrect != 1 {
		t.Errorf("unexpected stored totals: %+v", stored)
	}

	// A fresh tracker over the same repo sees the same record.
	tr2 := newTestTracker(t, repo)
	p := tr2.Current()
	if p.TotalQuestionsAnswered != 2 || len(p.MissedQuestionIDs) != 1 || p.TargetExamDate == nil {
		t.Errorf("reloaded record does not match: %+v", p)
	}
}

func TestCurrent_ReturnsSnapshot(t *testing.T) {
	tr := newTestTracker(t, &memRepo{})
	tr.RecordAnswer(context.Background(), false, question(1, "MN Amendments"))

	p := tr.Current()
	p.StatsByCategory["MN Amendments"] = CategoryStats{Answered: 999}
	p.MissedQuestionIDs[0] = 999

	fresh := tr.Current()
	if fresh.StatsByCategory["MN Amendments"].Answered == 999 {
		t.Error("mutating a snapshot leaked into tracker state")
	}
	if fresh.MissedQuestionIDs[0] == 999 {
		t.Error("mutating snapshot missed IDs leaked into tracker state")
	}
}

func TestMasteryLevel(t *testing.T) {
	tests := []struct {
		correct, answered, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
	}
	for _, tt := range tests {
		if got := MasteryLevel(tt.correct, tt.answered); got != tt.want {
			t.Errorf("MasteryLevel(%d, %d) = %d, want %d", tt.correct, tt.answered, got, tt.want)
		}
	}
}
