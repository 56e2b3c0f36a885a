package quiz

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/progress"
	quizsess "github.com/abhisek/sprinklerprep/internal/quiz"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/screens/summary"
	"github.com/abhisek/sprinklerprep/internal/screens/tutorchat"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/components"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// QuizScreen drives one quiz session: question, option choice, reveal
// with citation and code text, then advance until the summary.
type QuizScreen struct {
	sess      *quizsess.Session
	mode      string // selection mode label for the summary and event log
	tracker   *progress.Tracker
	eventRepo store.EventRepo
	tutorSvc  *tutor.Service
	sessionID string
	mc        components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over an already-started session.
func New(sess *quizsess.Session, mode string, tracker *progress.Tracker, eventRepo store.EventRepo, tutorSvc *tutor.Service) *QuizScreen {
	s := &QuizScreen{
		sess:      sess,
		mode:      mode,
		tracker:   tracker,
		eventRepo: eventRepo,
		tutorSvc:  tutorSvc,
		sessionID: uuid.New().String(),
	}
	s.mc = s.newChoice()
	return s
}

func (s *QuizScreen) newChoice() components.MultiChoice {
	q := s.sess.Current()
	correct := 0
	for i, opt := range s.sess.Options {
		if opt == q.Answer {
			correct = i
		}
	}
	return components.NewMultiChoice(q.Question, s.sess.Options, correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.sess.Revealed {
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
		if s.tutorSvc != nil {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.sess.Revealed {
		switch kmsg.String() {
		case "enter", "n":
			return s.advance()
		case "e":
			if s.tutorSvc != nil {
				q := s.sess.Current()
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: tutorchat.New(s.tutorSvc, &q)}
				}
			}
		}
		return s, nil
	}

	s.mc, _ = s.mc.Update(msg)
	if s.mc.Submitted {
		s.recordAnswer()
	}
	return s, nil
}

// recordAnswer applies the choice to the session machine, the progress
// record, and the event log.
func (s *QuizScreen) recordAnswer() {
	q := s.sess.Current()
	correct, ok := s.sess.SelectOption(s.mc.Chosen())
	if !ok {
		return
	}

	ctx := context.Background()
	s.tracker.RecordAnswer(ctx, correct, q)

	if s.eventRepo != nil {
		err := s.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:  s.sessionID,
			Mode:       s.mode,
			QuestionID: q.ID,
			Category:   q.Category,
			Correct:    correct,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to log answer event:", err)
		}
	}
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.sess.Advance() {
		return s, nil
	}
	if s.sess.Finished {
		result := summary.Result{
			Mode:  s.mode,
			Total: len(s.sess.Questions),
			Score: s.sess.Score,
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(result)}
		}
	}
	s.mc = s.newChoice()
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	q := s.sess.Current()

	var b strings.Builder

	position := fmt.Sprintf("Question %d of %d", s.sess.Index+1, len(s.sess.Questions))
	meta := fmt.Sprintf("%s · %s", q.Category, q.Difficulty)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(position))
	b.WriteString("   " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
	if q.IsMNAmendment {
		b.WriteString("  " + theme.MNBadge.Render("MN AMENDMENT"))
	}
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(width - 4).Render(s.mc.View())
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}

	if s.sess.Revealed {
		b.WriteString("\n")
		b.WriteString(renderReveal(q, s.mc.IsCorrect(), width))
	}

	return b.String()
}

// renderReveal shows the verdict plus the code citation backing the answer.
func renderReveal(q bank.Question, correct bool, width int) string {
	var b strings.Builder

	verdict := theme.Correct.Render("✓ Correct")
	if !correct {
		verdict = theme.Incorrect.Render("✗ Incorrect")
	}
	b.WriteString("  " + verdict + "\n\n")

	if q.Citation != "" {
		b.WriteString("  " + theme.Citation.Render(q.Citation) + "\n")
	}
	if q.CodeText != "" {
		box := theme.Card.Width(width - 8).Render(q.CodeText)
		for _, line := range strings.Split(box, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	if q.Mnemonic != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Secondary).
			Render("Mnemonic: "+q.Mnemonic) + "\n")
	}

	return b.String()
}
