package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/llm"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/ui/components"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

const recentLimit = 8

type statsLoadedMsg struct {
	Recent []store.AnswerEvent
	Usage  []store.LLMModelUsage
}

// StatsScreen shows overall totals, per-category mastery, recent
// answers from the event log, and tutor API spend.
type StatsScreen struct {
	tracker   *progress.Tracker
	eventRepo store.EventRepo
	recent    []store.AnswerEvent
	usage     []store.LLMModelUsage
	loaded    bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen.
func New(tracker *progress.Tracker, eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{tracker: tracker, eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg statsLoadedMsg
		if s.eventRepo != nil {
			// Both loads are best effort; the progress totals render
			// regardless.
			msg.Recent, _ = s.eventRepo.RecentAnswers(ctx, recentLimit)
			msg.Usage, _ = s.eventRepo.LLMUsage(ctx)
		}
		return msg
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.recent = msg.Recent
		s.usage = msg.Usage
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.tracker.Current()

	var b strings.Builder

	section := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	b.WriteString("\n")

	accuracy := progress.MasteryLevel(p.TotalCorrect, p.TotalQuestionsAnswered)
	totals := fmt.Sprintf("Answered: %d    Correct: %d    Accuracy: %d%%    Flashcards learned: %d",
		p.TotalQuestionsAnswered, p.TotalCorrect, accuracy, p.FlashcardsLearned)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(totals) + "\n\n")

	b.WriteString("  " + section.Render("CATEGORY MASTERY") + "\n\n")
	if len(p.StatsByCategory) == 0 {
		b.WriteString("  " + theme.Hint.Render("No answers recorded yet.") + "\n")
	} else {
		barWidth := width - 8
		if barWidth > 64 {
			barWidth = 64
		}
		for _, cat := range sortedCategories(p.StatsByCategory) {
			stats := p.StatsByCategory[cat]
			bar := components.NewProgressBar(
				fmt.Sprintf("%-28s", truncate(cat, 28)),
				float64(stats.MasteryLevel)/100,
				true,
				barWidth,
			)
			b.WriteString("  " + bar.View() + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("  " + section.Render("RECENT ANSWERS") + "\n\n")
	if !s.loaded {
		b.WriteString("  " + theme.Hint.Render("Loading...") + "\n")
	} else if len(s.recent) == 0 {
		b.WriteString("  " + theme.Hint.Render("Nothing yet. Start a quiz!") + "\n")
	} else {
		for _, e := range s.recent {
			mark := theme.Correct.Render("✓")
			if !e.Correct {
				mark = theme.Incorrect.Render("✗")
			}
			line := fmt.Sprintf("%s  %s  %s",
				e.Timestamp.Local().Format("Jan 02 15:04"), e.Mode, truncate(e.Category, 36))
			b.WriteString("  " + mark + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}
	}

	if spend := s.renderSpend(); spend != "" {
		b.WriteString("\n  " + section.Render("TUTOR USAGE") + "\n\n")
		b.WriteString(spend)
	}

	return b.String()
}

// renderSpend sums tutor API usage per model, priced where the model is
// in the embedded cost table.
func (s *StatsScreen) renderSpend() string {
	if len(s.usage) == 0 {
		return ""
	}
	var b strings.Builder
	for _, u := range s.usage {
		line := fmt.Sprintf("%-28s %4d requests  %7d in / %6d out tokens",
			truncate(u.Model, 28), u.Requests, u.InputTokens, u.OutputTokens)
		if cost := llm.LookupCost(u.Model); cost != nil {
			line += fmt.Sprintf("  $%.4f", cost.Cost(u.InputTokens, u.OutputTokens))
		}
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
	}
	return b.String()
}

func sortedCategories(stats map[string]progress.CategoryStats) []string {
	out := make([]string, 0, len(stats))
	for cat := range stats {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
