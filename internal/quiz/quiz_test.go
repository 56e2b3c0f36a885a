package quiz

import (
	"errors"
	"sort"
	"testing"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

func testQuestions(n int) []bank.Question {
	var qs []bank.Question
	for i := 1; i <= n; i++ {
		qs = append(qs, bank.Question{
			ID:          i,
			Category:    "NFPA 13 - Installation",
			Question:    "q",
			Answer:      "right",
			Distractors: []string{"wrong1", "wrong2", "wrong3"},
		})
	}
	return qs
}

func TestStart_EmptySelection(t *testing.T) {
	_, err := Start(nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestStart_PreparesFirstQuestion(t *testing.T) {
	s, err := Start(testQuestions(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Index != 0 || s.Score != 0 || s.Revealed || s.Finished {
		t.Errorf("unexpected initial state: %+v", s)
	}

	want := []string{"right", "wrong1", "wrong2", "wrong3"}
	got := append([]string(nil), s.Options...)
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("options are not answer+distractors: %v", s.Options)
		}
	}
}

func TestSelectOption_CorrectAndWrong(t *testing.T) {
	s, _ := Start(testQuestions(2))

	correct, ok := s.SelectOption("right")
	if !ok || !correct {
		t.Fatalf("expected correct selection, got correct=%v ok=%v", correct, ok)
	}
	if s.Score != 1 || !s.Revealed || s.Selected != "right" {
		t.Errorf("unexpected state after correct answer: %+v", s)
	}

	s.Advance()

	correct, ok = s.SelectOption("wrong1")
	if !ok || correct {
		t.Fatalf("expected wrong selection, got correct=%v ok=%v", correct, ok)
	}
	if s.Score != 1 {
		t.Errorf("score must not change on wrong answer, got %d", s.Score)
	}
}

func TestSelectOption_SecondSelectIsNoOp(t *testing.T) {
	s, _ := Start(testQuestions(1))

	s.SelectOption("wrong1")
	correct, ok := s.SelectOption("right")
	if ok {
		t.Fatal("expected second selection to be rejected")
	}
	if correct {
		t.Fatal("rejected selection must not report correct")
	}
	if s.Score != 0 || s.Selected != "wrong1" {
		t.Errorf("state changed on rejected selection: %+v", s)
	}
}

func TestAdvance_BeforeRevealIsNoOp(t *testing.T) {
	s, _ := Start(testQuestions(2))
	if s.Advance() {
		t.Fatal("expected Advance before reveal to be a no-op")
	}
	if s.Index != 0 {
		t.Errorf("index moved without reveal: %d", s.Index)
	}
}

func TestAdvance_MovesAndResets(t *testing.T) {
	s, _ := Start(testQuestions(3))

	s.SelectOption("right")
	if !s.Advance() {
		t.Fatal("expected Advance to succeed")
	}

	if s.Index != 1 || s.Revealed || s.Selected != "" || s.Finished {
		t.Errorf("unexpected state after advance: %+v", s)
	}
	if len(s.Options) != 4 {
		t.Errorf("expected fresh options for next question, got %v", s.Options)
	}
}

func TestAdvance_FinishesAfterLastQuestion(t *testing.T) {
	s, _ := Start(testQuestions(2))

	s.SelectOption("right")
	s.Advance()
	s.SelectOption("wrong2")
	s.Advance()

	if !s.Finished {
		t.Fatal("expected session finished")
	}
	if s.Advance() {
		t.Fatal("expected Advance after finish to be a no-op")
	}
	if _, ok := s.SelectOption("right"); ok {
		t.Fatal("expected SelectOption after finish to be rejected")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{7, 10, 70},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
	}
	for _, tt := range tests {
		if got := Percent(tt.score, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestSession_FullRun(t *testing.T) {
	s, _ := Start(testQuestions(10))

	for i := range 10 {
		answer := "right"
		if i >= 7 {
			answer = "wrong1"
		}
		if _, ok := s.SelectOption(answer); !ok {
			t.Fatalf("selection rejected at question %d", i)
		}
		if !s.Advance() {
			t.Fatalf("advance failed at question %d", i)
		}
	}

	if !s.Finished {
		t.Fatal("expected finished session")
	}
	if s.Score != 7 {
		t.Fatalf("expected score 7, got %d", s.Score)
	}
	if s.Percent() != 70 {
		t.Fatalf("expected 70%%, got %d%%", s.Percent())
	}
}
