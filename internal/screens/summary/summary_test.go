package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testResult() Result {
	return Result{Mode: "Fast 10", Total: 10, Score: 7}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_QuizDisplay(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if !strings.Contains(view, "70%") {
		t.Errorf("expected score percentage in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Fast 10") {
		t.Error("expected mode label in view")
	}
}

func TestSummaryScreen_FlashcardDisplay(t *testing.T) {
	s := New(Result{Mode: "All Questions", Total: 8, Learned: 8, Flashcard: true})
	view := s.View(80, 24)
	if !strings.Contains(view, "Cards learned: 8 of 8") {
		t.Errorf("expected learned count in view, got:\n%s", view)
	}
}

func TestSummaryScreen_Verdict(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{95, "Excellent"},
		{70, "Passing"},
		{69, "Below the 70% pass mark"},
	}
	for _, tt := range tests {
		if got := verdict(tt.pct); !strings.Contains(got, tt.want) {
			t.Errorf("verdict(%d) = %q, want substring %q", tt.pct, got, tt.want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
