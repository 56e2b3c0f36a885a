package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/ui/components"
	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = ` ███████╗██████╗ ██████╗ ██╗███╗   ██╗██╗  ██╗██╗     ███████╗██████╗
 ██╔════╝██╔══██╗██╔══██╗██║████╗  ██║██║ ██╔╝██║     ██╔════╝██╔══██╗
 ███████╗██████╔╝██████╔╝██║██╔██╗ ██║█████╔╝ ██║     █████╗  ██████╔╝
 ╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║██╔═██╗ ██║     ██╔══╝  ██╔══██╗
 ███████║██║     ██║  ██║██║██║ ╚████║██║  ██╗███████╗███████╗██║  ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝
                        P R E P`

const titleCompact = "S P R I N K L E R P R E P"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 74 {
		w = 74
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact || cw < 72 {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the dashboard totals in a bordered box matching content width.
func renderStatsBar(answered, correct, learned, daysToExam int, hasTarget, compact bool, cw int) string {
	answerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	cardStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	examStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	exam := dimStyle.Render("⏳ NO TARGET")
	if hasTarget {
		exam = examStyle.Render(fmt.Sprintf("⏳ %d DAYS", daysToExam))
	}

	var stats string
	if compact {
		if hasTarget {
			exam = examStyle.Render(fmt.Sprintf("⏳%d", daysToExam))
		} else {
			exam = dimStyle.Render("⏳-")
		}
		stats = fmt.Sprintf("%s %s %s",
			answerStyle.Render(fmt.Sprintf("✓%d/%d", correct, answered)),
			cardStyle.Render(fmt.Sprintf("🃏%d", learned)),
			exam,
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			answerStyle.Render(fmt.Sprintf("✓ %d/%d CORRECT", correct, answered)),
			cardStyle.Render(fmt.Sprintf("🃏 %d LEARNED", learned)),
			exam,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMasteryBars shows per-category accuracy for the most-practiced categories.
func renderMasteryBars(bars []categoryMastery, cw int) string {
	if len(bars) == 0 {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Answer some questions to build your mastery profile.")
	}

	barWidth := cw - 4
	if barWidth > 54 {
		barWidth = 54
	}

	var lines []string
	for _, cm := range bars {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-22s", truncate(cm.Name, 22)),
			float64(cm.Level)/100,
			true,
			barWidth,
		)
		lines = append(lines, bar.View())
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderTutorBanner renders a warning banner when no LLM API key is configured.
func renderTutorBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the AI Tutor (see sprinklerprep --help)")
}

// renderBankBanner renders a warning banner when the question bank is empty.
func renderBankBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Question bank is empty; study modes are unavailable")
}

// renderPanelFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderPanelFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
