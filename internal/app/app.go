package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/exam"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/screens/home"
	"github.com/abhisek/sprinklerprep/internal/screens/welcome"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
)

// Deps carries the long-lived collaborators every screen draws from.
// TutorSvc may be nil when no LLM provider is configured.
type Deps struct {
	Bank      *bank.Bank
	Tracker   *progress.Tracker
	EventRepo store.EventRepo
	TutorSvc  *tutor.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Bank, deps.Tracker, deps.EventRepo, deps.TutorSvc)
	}
	return AppModel{
		deps:   deps,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The splash owns the whole frame; no chrome until it hands off.
	if _, onSplash := active.(*welcome.WelcomeScreen); onSplash {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStats reads the live totals and exam countdown for the header bar.
func (m AppModel) headerStats() layout.HeaderStats {
	p := m.deps.Tracker.Current()
	stats := layout.HeaderStats{
		Answered: p.TotalQuestionsAnswered,
		Correct:  p.TotalCorrect,
	}
	if p.TargetExamDate != nil {
		if d, err := exam.DaysUntil(*p.TargetExamDate, time.Now()); err == nil && d >= 0 {
			stats.DaysToExam = d
			stats.HasTarget = true
		}
	}
	return stats
}

// footerHints asks the active screen for hints, falling back to stack defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
