package tutorchat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/llm"
	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/abhisek/sprinklerprep/internal/ui/components"
	"github.com/abhisek/sprinklerprep/internal/ui/layout"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

const (
	// connectDelay is cosmetic: the original app showed a brief
	// "connecting" state before the chat became interactive.
	connectDelay = 1200 * time.Millisecond

	pollInterval = 150 * time.Millisecond
)

type connectedMsg struct{}

type pollMsg time.Time

// TutorChatScreen is the AI tutor conversation view. When opened from a
// quiz or flashcard, the current question rides along as context for
// every exchange.
type TutorChatScreen struct {
	svc        *tutor.Service
	question   *bank.Question
	transcript []llm.Message
	input      components.TextInput
	connecting bool
	waiting    bool
}

var _ screen.Screen = (*TutorChatScreen)(nil)
var _ screen.KeyHintProvider = (*TutorChatScreen)(nil)

// New creates a tutor chat screen. question may be nil for free-form chat.
func New(svc *tutor.Service, question *bank.Question) *TutorChatScreen {
	return &TutorChatScreen{
		svc:        svc,
		question:   question,
		input:      components.NewTextInput("Ask the tutor...", false, 200),
		connecting: true,
	}
}

func (s *TutorChatScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		tea.Tick(connectDelay, func(time.Time) tea.Msg { return connectedMsg{} }),
	)
}

func (s *TutorChatScreen) Title() string {
	return "AI Tutor"
}

func (s *TutorChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TutorChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		s.connecting = false
		s.transcript = append(s.transcript, llm.Message{
			Role:    llm.RoleAssistant,
			Content: s.greeting(),
		})
		return s, nil

	case pollMsg:
		if !s.waiting {
			return s, nil
		}
		if reply, ok := s.svc.ConsumeReply(); ok {
			s.waiting = false
			s.transcript = append(s.transcript, llm.Message{
				Role:    llm.RoleAssistant,
				Content: reply,
			})
			return s, nil
		}
		return s, pollTick()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}

	if s.connecting {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TutorChatScreen) send() tea.Cmd {
	if s.connecting || s.waiting {
		return nil
	}
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		return nil
	}

	s.transcript = append(s.transcript, llm.Message{Role: llm.RoleUser, Content: query})
	s.input.Model.SetValue("")
	s.waiting = true
	s.svc.RequestReply(context.Background(), s.transcript, s.question)
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func (s *TutorChatScreen) greeting() string {
	if s.question != nil {
		return "Let's dig into this one. What would you like me to explain about this question?"
	}
	return "Ask me anything about NFPA 13, NFPA 25, or the Minnesota amendments."
}

func (s *TutorChatScreen) View(width, height int) string {
	if s.connecting {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Connecting to the AI Tutor..."))
	}

	wrap := lipgloss.NewStyle().Width(width - 6)
	tutorLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	youLabel := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder

	if s.question != nil {
		header := "Discussing: " + s.question.Topic
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(header))
		b.WriteString("\n\n")
	}

	for _, m := range s.transcript {
		label := tutorLabel.Render("Tutor")
		if m.Role == llm.RoleUser {
			label = youLabel.Render("You")
		}
		b.WriteString("  " + label + "\n")
		for _, line := range strings.Split(wrap.Render(m.Content), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if s.waiting {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Tutor is thinking...") + "\n")
	}

	// Keep the newest exchanges visible, reserving room for the input.
	inputArea := "  " + s.input.View()
	avail := height - lipgloss.Height(inputArea) - 1
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	return strings.Join(lines, "\n") + "\n\n" + inputArea
}
