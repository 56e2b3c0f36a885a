package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/bank"
	fc "github.com/abhisek/sprinklerprep/internal/flashcards"
	"github.com/abhisek/sprinklerprep/internal/progress"
	quizsess "github.com/abhisek/sprinklerprep/internal/quiz"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	flashscreen "github.com/abhisek/sprinklerprep/internal/screens/flashcards"
	quizscreen "github.com/abhisek/sprinklerprep/internal/screens/quiz"
	"github.com/abhisek/sprinklerprep/internal/selector"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/components"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// Kind selects what a configured session runs as.
type Kind int

const (
	KindQuiz Kind = iota
	KindFlashcards
)

// studyMode pairs a display label with its selection mode.
type studyMode struct {
	Label string
	Mode  selector.Mode
}

var studyModes = []studyMode{
	{"All Questions", selector.ModeAll},
	{"MN Amendments", selector.ModeMNAmendments},
	{"Hydraulics & Math", selector.ModeHydraulics},
	{"NFPA 25 / ITM", selector.ModeNFPA25},
	{"Fast 10", selector.ModeFast10},
	{"Missed Questions", selector.ModeMissed},
}

// Focusable form rows, top to bottom.
const (
	focusMode = iota
	focusDifficulty
	focusType
	focusCategory
	focusSearch
	focusStart
	focusCount
)

// SetupScreen is the session setup form: study mode, facet filters and
// free-text search, then start.
type SetupScreen struct {
	kind      Kind
	bank      *bank.Bank
	tracker   *progress.Tracker
	eventRepo store.EventRepo
	tutorSvc  *tutor.Service

	mode       components.Cycler
	difficulty components.Cycler
	sprinkler  components.Cycler
	category   components.Cycler
	search     components.TextInput
	focus      int
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen. initialMode preselects the study mode
// when the home menu already names one.
func New(kind Kind, initialMode selector.Mode, b *bank.Bank, tracker *progress.Tracker, eventRepo store.EventRepo, tutorSvc *tutor.Service) *SetupScreen {
	modeLabels := make([]string, len(studyModes))
	modeIndex := 0
	for i, m := range studyModes {
		modeLabels[i] = m.Label
		if m.Mode == initialMode {
			modeIndex = i
		}
	}

	types := []string{selector.Any}
	for _, st := range b.SprinklerTypes() {
		types = append(types, string(st))
	}
	categories := append([]string{selector.Any}, b.Categories()...)

	s := &SetupScreen{
		kind:       kind,
		bank:       b,
		tracker:    tracker,
		eventRepo:  eventRepo,
		tutorSvc:   tutorSvc,
		mode:       components.NewCycler("Mode", modeLabels),
		difficulty: components.NewCycler("Difficulty", []string{selector.Any, "Easy", "Medium", "Hard"}),
		sprinkler:  components.NewCycler("System Type", types),
		category:   components.NewCycler("Category", categories),
		search:     components.NewTextInput("Search questions...", false, 80),
	}
	s.mode.Index = modeIndex
	s.setFocus(focusMode)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.kind == KindFlashcards {
		return "Flashcard Setup"
	}
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) setFocus(f int) {
	s.focus = f
	s.mode.Focused = f == focusMode
	s.difficulty.Focused = f == focusDifficulty
	s.sprinkler.Focused = f == focusType
	s.category.Focused = f == focusCategory
	if f == focusSearch {
		s.search.Model.Focus()
	} else {
		s.search.Model.Blur()
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "shift+tab":
			if s.focus > 0 {
				s.setFocus(s.focus - 1)
			}
			return s, nil
		case "down", "tab":
			if s.focus < focusCount-1 {
				s.setFocus(s.focus + 1)
			}
			return s, nil
		case "enter":
			return s, s.start()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusMode:
		s.mode, cmd = s.mode.Update(msg)
	case focusDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case focusType:
		s.sprinkler, cmd = s.sprinkler.Update(msg)
	case focusCategory:
		s.category, cmd = s.category.Update(msg)
	case focusSearch:
		s.search, cmd = s.search.Update(msg)
	}
	return s, cmd
}

// start runs the selector and replaces this screen with the session.
// An empty selection stays here and shows a message instead.
func (s *SetupScreen) start() tea.Cmd {
	chosen := studyModes[s.mode.Index]

	opts := selector.Options{
		Mode:          chosen.Mode,
		Difficulty:    s.difficulty.Value(),
		SprinklerType: s.sprinkler.Value(),
		Category:      s.category.Value(),
		Search:        s.search.Value(),
	}
	if chosen.Mode == selector.ModeMissed {
		opts.MissedIDs = s.tracker.Current().MissedQuestionIDs
	}

	questions := selector.Select(s.bank, opts)
	if len(questions) == 0 {
		s.errMsg = "No questions match those filters. Broaden the selection and try again."
		return nil
	}
	s.errMsg = ""

	if s.kind == KindFlashcards {
		sess := fc.Start(questions)
		next := flashscreen.New(sess, chosen.Label, s.tracker, s.tutorSvc)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	sess, err := quizsess.Start(questions)
	if err != nil {
		s.errMsg = "No questions match those filters. Broaden the selection and try again."
		return nil
	}
	next := quizscreen.New(sess, chosen.Label, s.tracker, s.eventRepo, s.tutorSvc)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var rows []string

	rows = append(rows,
		s.mode.View(),
		s.difficulty.View(),
		s.sprinkler.View(),
		s.category.View(),
	)

	searchPrefix := "  "
	searchLabel := lipgloss.NewStyle().Foreground(theme.Text)
	if s.focus == focusSearch {
		searchPrefix = "▸ "
		searchLabel = searchLabel.Bold(true).Foreground(theme.Primary)
	}
	rows = append(rows, searchPrefix+searchLabel.Render("Search")+"  "+s.search.View())

	label := "START QUIZ"
	if s.kind == KindFlashcards {
		label = "START FLASHCARDS"
	}
	start := components.NewButton(label, s.focus == focusStart, nil)
	rows = append(rows, "", start.View())

	if s.errMsg != "" {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.Warning).Render(s.errMsg))
	}

	matches := len(selector.Filter(s.bank, s.previewOpts()))
	counter := fmt.Sprintf("%d questions match", matches)
	if matches == 1 {
		counter = "1 question matches"
	}
	rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))

	content := strings.Join(rows, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// previewOpts mirrors start()'s options for the live match counter.
func (s *SetupScreen) previewOpts() selector.Options {
	chosen := studyModes[s.mode.Index]
	opts := selector.Options{
		Mode:          chosen.Mode,
		Difficulty:    s.difficulty.Value(),
		SprinklerType: s.sprinkler.Value(),
		Category:      s.category.Value(),
		Search:        s.search.Value(),
	}
	if chosen.Mode == selector.ModeMissed {
		opts.MissedIDs = s.tracker.Current().MissedQuestionIDs
	}
	return opts
}
