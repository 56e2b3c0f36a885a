package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/quiz"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// Result is the outcome of a completed study session.
type Result struct {
	Mode      string // selection mode label, e.g. "Fast 10"
	Total     int
	Score     int  // correct answers (quiz sessions)
	Learned   int  // cards marked learned (flashcard sessions)
	Flashcard bool
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	centered := func(text string, style lipgloss.Style) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	centered("Session complete!", lipgloss.NewStyle().Foreground(theme.Primary).Bold(true))
	if s.result.Mode != "" {
		centered(s.result.Mode, lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	b.WriteString("\n")

	if s.result.Flashcard {
		centered(fmt.Sprintf("Cards learned: %d of %d", s.result.Learned, s.result.Total),
			lipgloss.NewStyle().Foreground(theme.Text))
	} else {
		pct := quiz.Percent(s.result.Score, s.result.Total)
		centered(fmt.Sprintf("Questions: %d        Correct: %d        Score: %d%%",
			s.result.Total, s.result.Score, pct),
			lipgloss.NewStyle().Foreground(theme.Text))
		b.WriteString("\n")
		centered(verdict(pct), lipgloss.NewStyle().Foreground(verdictColor(pct)).Bold(true))
	}

	b.WriteString("\n")
	centered("Press Enter to return home", theme.Hint)

	return b.String()
}

// verdict maps a quiz score to an encouragement line. The Minnesota
// journeyman exam pass mark is 70%.
func verdict(pct int) string {
	switch {
	case pct >= 90:
		return "Excellent. You are in great shape for exam day."
	case pct >= 70:
		return "Passing territory. Keep the streak going."
	default:
		return "Below the 70% pass mark. Hit the missed questions again."
	}
}

func verdictColor(pct int) color.Color {
	switch {
	case pct >= 90:
		return theme.Success
	case pct >= 70:
		return theme.Secondary
	default:
		return theme.Error
	}
}
