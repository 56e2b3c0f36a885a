package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/screen"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// PlaceholderScreen shows a static notice for features that need
// configuration the user has not provided, e.g. the tutor without an
// LLM API key.
type PlaceholderScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a notice screen with the given title and body text.
func New(title, body string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, body: body}
}

// TutorUnavailable is the notice shown when no LLM provider is configured.
func TutorUnavailable() *PlaceholderScreen {
	return New("AI Tutor",
		"The AI Tutor needs an API key.\n\nSet SPRINKLERPREP_GEMINI_API_KEY (or the OpenAI,\nAnthropic, or OpenRouter equivalent) and restart.")
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
