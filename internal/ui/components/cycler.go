package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// Cycler is a horizontal value picker: left/right cycles through a
// fixed set of values. Used for facet filters on the session setup form.
type Cycler struct {
	Label   string
	Values  []string
	Index   int
	Focused bool
}

// NewCycler creates a cycler over the given values, starting at the first.
func NewCycler(label string, values []string) Cycler {
	return Cycler{Label: label, Values: values}
}

// Update handles left/right cycling when focused.
func (c Cycler) Update(msg tea.Msg) (Cycler, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Index--
		if c.Index < 0 {
			c.Index = len(c.Values) - 1
		}
	case "right", "l":
		c.Index++
		if c.Index >= len(c.Values) {
			c.Index = 0
		}
	}

	return c, nil
}

// Value returns the currently selected value.
func (c Cycler) Value() string {
	if len(c.Values) == 0 {
		return ""
	}
	return c.Values[c.Index]
}

// View renders the cycler as "Label  ◂ value ▸".
func (c Cycler) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if c.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(theme.Primary)
		valueStyle = valueStyle.Bold(true)
	}

	prefix := "  "
	if c.Focused {
		prefix = "▸ "
	}

	return fmt.Sprintf("%s%s  %s",
		prefix,
		labelStyle.Render(c.Label),
		valueStyle.Render("◂ "+c.Value()+" ▸"),
	)
}
