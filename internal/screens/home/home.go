package home

import (
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/exam"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/screens/examtracker"
	"github.com/abhisek/sprinklerprep/internal/screens/placeholder"
	"github.com/abhisek/sprinklerprep/internal/screens/setup"
	"github.com/abhisek/sprinklerprep/internal/screens/stats"
	"github.com/abhisek/sprinklerprep/internal/screens/tutorchat"
	"github.com/abhisek/sprinklerprep/internal/selector"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/components"
)

// maxMasteryBars caps the category bars shown on the dashboard.
const maxMasteryBars = 4

// categoryMastery is one dashboard mastery bar.
type categoryMastery struct {
	Name  string
	Level int
}

// HomeScreen is the main dashboard: study mode menu, totals and
// per-category mastery.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	answered   int
	correct    int
	learned    int
	daysToExam int
	hasTarget  bool
	topMastery []categoryMastery
	bankEmpty  bool
	tutorReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(b *bank.Bank, tracker *progress.Tracker, eventRepo store.EventRepo, tutorSvc *tutor.Service) *HomeScreen {
	p := tracker.Current()

	var daysToExam int
	var hasTarget bool
	if p.TargetExamDate != nil {
		if d, err := exam.DaysUntil(*p.TargetExamDate, time.Now()); err == nil && d >= 0 {
			daysToExam = d
			hasTarget = true
		}
	}

	bankEmpty := b.Len() == 0
	missedCount := len(p.MissedQuestionIDs)

	menuLabels := []string{
		"PRACTICE QUIZ", "FAST 10", "MISSED REVIEW", "FLASHCARDS",
		"ASK THE TUTOR", "STATS", "EXAM TRACKER", "EXIT",
	}
	disabled := map[int]bool{
		0: bankEmpty,
		1: bankEmpty,
		2: bankEmpty || missedCount == 0,
		3: bankEmpty,
	}

	pushSetup := func(kind setup.Kind, mode selector.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(kind, mode, b, tracker, eventRepo, tutorSvc),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: disabled[0], Action: pushSetup(setup.KindQuiz, selector.ModeAll)},
		{Label: menuLabels[1], Disabled: disabled[1], Action: pushSetup(setup.KindQuiz, selector.ModeFast10)},
		{Label: menuLabels[2], Disabled: disabled[2], Action: pushSetup(setup.KindQuiz, selector.ModeMissed)},
		{Label: menuLabels[3], Disabled: disabled[3], Action: pushSetup(setup.KindFlashcards, selector.ModeAll)},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				if tutorSvc == nil {
					return router.PushScreenMsg{Screen: placeholder.TutorUnavailable()}
				}
				return router.PushScreenMsg{Screen: tutorchat.New(tutorSvc, nil)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker, eventRepo)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examtracker.New(tracker)}
			}
		}},
		{Label: menuLabels[7], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
		answered:   p.TotalQuestionsAnswered,
		correct:    p.TotalCorrect,
		learned:    p.FlashcardsLearned,
		daysToExam: daysToExam,
		hasTarget:  hasTarget,
		topMastery: topCategories(p.StatsByCategory),
		bankEmpty:  bankEmpty,
		tutorReady: tutorSvc != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	sections = append(sections, renderStatsBar(
		h.answered, h.correct, h.learned, h.daysToExam, h.hasTarget, compact, cw))

	if !compact {
		sections = append(sections, renderMasteryBars(h.topMastery, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.bankEmpty {
		sections = append(sections, renderBankBanner(cw))
	}
	if !h.tutorReady {
		sections = append(sections, renderTutorBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderPanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// topCategories picks the most-practiced categories for the dashboard bars.
func topCategories(stats map[string]progress.CategoryStats) []categoryMastery {
	type entry struct {
		name  string
		stats progress.CategoryStats
	}
	entries := make([]entry, 0, len(stats))
	for name, cs := range stats {
		if cs.Answered > 0 {
			entries = append(entries, entry{name, cs})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].stats.Answered != entries[j].stats.Answered {
			return entries[i].stats.Answered > entries[j].stats.Answered
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > maxMasteryBars {
		entries = entries[:maxMasteryBars]
	}
	out := make([]categoryMastery, len(entries))
	for i, e := range entries {
		out[i] = categoryMastery{Name: e.name, Level: e.stats.MasteryLevel}
	}
	return out
}
