package examtracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/exam"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// ExamTrackerScreen lists the published exam sittings and manages the
// target date. The countdown in the app header follows the target set
// here.
type ExamTrackerScreen struct {
	tracker  *progress.Tracker
	sittings []exam.Sitting
	selected int
	now      func() time.Time
}

var _ screen.Screen = (*ExamTrackerScreen)(nil)
var _ screen.KeyHintProvider = (*ExamTrackerScreen)(nil)

// New creates an exam tracker screen.
func New(tracker *progress.Tracker) *ExamTrackerScreen {
	return &ExamTrackerScreen{
		tracker:  tracker,
		sittings: exam.Upcoming(time.Now()),
		now:      time.Now,
	}
}

func (s *ExamTrackerScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamTrackerScreen) Title() string {
	return "Exam Tracker"
}

func (s *ExamTrackerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Sitting"},
		{Key: "Enter", Description: "Set target"},
		{Key: "C", Description: "Clear target"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamTrackerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sittings)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.sittings) {
			date := s.sittings[s.selected].Date
			s.tracker.SetTargetDate(context.Background(), &date)
		}
	case "c":
		s.tracker.SetTargetDate(context.Background(), nil)
	}
	return s, nil
}

func (s *ExamTrackerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	target := s.tracker.Current().TargetExamDate
	b.WriteString(s.renderCountdown(target, width))
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render("UPCOMING SITTINGS") + "\n\n")

	if len(s.sittings) == 0 {
		b.WriteString("  " + theme.Hint.Render("No upcoming sittings on the published schedule.") + "\n")
		return b.String()
	}

	for i, sitting := range s.sittings {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s    register by %s    %s",
			formatDate(sitting.Date), formatDate(sitting.Deadline), sitting.Location)

		marker := ""
		if target != nil && *target == sitting.Date {
			marker = "  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("● target")
		}

		b.WriteString("  " + prefix + style.Render(line) + marker + "\n")

		if deadlineSoon(sitting.Deadline, s.now()) {
			b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.Warning).
				Render("⚠ registration deadline within 14 days") + "\n")
		}
	}

	return b.String()
}

func (s *ExamTrackerScreen) renderCountdown(target *string, width int) string {
	box := theme.Card.Width(min(width-8, 56)).Align(lipgloss.Center)

	if target == nil {
		return "  " + box.Render(theme.Hint.Render("No target exam set. Pick a sitting below.")) + "\n"
	}

	cd, err := exam.CountdownTo(*target, s.now())
	if err != nil {
		return "  " + box.Render(theme.Hint.Render("Target date unreadable.")) + "\n"
	}
	if cd.Passed() {
		return "  " + box.Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Exam day has arrived. Good luck!")) + "\n"
	}

	counter := fmt.Sprintf("%dd %dh %dm", cd.Days, cd.Hours, cd.Minutes)
	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(counter) +
		"\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("until your exam on "+formatDate(*target))
	return "  " + box.Render(content) + "\n"
}

// deadlineSoon reports whether the registration deadline is within the
// next two weeks but not yet past.
func deadlineSoon(deadline string, now time.Time) bool {
	days, err := exam.DaysUntil(deadline, now)
	if err != nil {
		return false
	}
	return days >= 0 && days <= 14
}

func formatDate(iso string) string {
	d, err := time.Parse(exam.DateLayout, iso)
	if err != nil {
		return iso
	}
	return d.Format("Jan 2, 2006")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
