package flashcards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	fc "github.com/abhisek/sprinklerprep/internal/flashcards"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/router"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/screens/summary"
	"github.com/abhisek/sprinklerprep/internal/screens/tutorchat"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// FlashcardScreen cycles a card deck: front shows the question, the
// back shows the answer with its citation, and each card is either
// marked learned or sent to the back of the deck.
type FlashcardScreen struct {
	sess     *fc.Session
	mode     string
	total    int
	tracker  *progress.Tracker
	tutorSvc *tutor.Service
	flipped  bool
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New creates a flashcard screen over an already-started session.
func New(sess *fc.Session, mode string, tracker *progress.Tracker, tutorSvc *tutor.Service) *FlashcardScreen {
	return &FlashcardScreen{
		sess:     sess,
		mode:     mode,
		total:    sess.Remaining(),
		tracker:  tracker,
		tutorSvc: tutorSvc,
	}
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	if !s.flipped {
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "L", Description: "Learned"},
		{Key: "R", Description: "Review again"},
	}
	if s.tutorSvc != nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.sess.Done() {
		if kmsg.String() == "enter" {
			return s, s.finish()
		}
		return s, nil
	}

	switch kmsg.String() {
	case " ", "space", "enter":
		if !s.flipped {
			s.flipped = true
		}
	case "l":
		if s.flipped {
			if _, ok := s.sess.Result(fc.OutcomeLearned); ok {
				s.tracker.RecordFlashcardLearned(context.Background())
				s.flipped = false
			}
			if s.sess.Done() {
				return s, s.finish()
			}
		}
	case "r":
		if s.flipped {
			s.sess.Result(fc.OutcomeReview)
			s.flipped = false
		}
	case "e":
		if s.flipped && s.tutorSvc != nil {
			if card, ok := s.sess.Current(); ok {
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: tutorchat.New(s.tutorSvc, &card)}
				}
			}
		}
	}

	return s, nil
}

func (s *FlashcardScreen) finish() tea.Cmd {
	result := summary.Result{
		Mode:      s.mode,
		Total:     s.total,
		Learned:   s.sess.Learned,
		Flashcard: true,
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *FlashcardScreen) View(width, height int) string {
	card, ok := s.sess.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render("Deck complete! Press Enter to continue."))
	}

	counter := fmt.Sprintf("%d learned · %d remaining", s.sess.Learned, s.sess.Remaining())
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	var face strings.Builder
	if !s.flipped {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(card.Topic))
		face.WriteString("\n\n")
		face.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(card.Question))
		if card.IsMNAmendment {
			face.WriteString("\n\n")
			face.WriteString(theme.MNBadge.Render("MN AMENDMENT"))
		}
	} else {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(card.Answer))
		if card.Citation != "" {
			face.WriteString("\n\n")
			face.WriteString(theme.Citation.Render(card.Citation))
		}
		if card.CodeText != "" {
			face.WriteString("\n\n")
			face.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(card.CodeText))
		}
		if card.Mnemonic != "" {
			face.WriteString("\n\n")
			face.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("Mnemonic: " + card.Mnemonic))
		}
	}

	cardWidth := width - 12
	if cardWidth > 70 {
		cardWidth = 70
	}
	box := theme.Card.Width(cardWidth).Render(face.String())

	content := header + "\n\n" + box
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
