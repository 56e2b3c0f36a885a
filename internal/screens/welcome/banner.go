package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprinklerprep/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██████╗ ██╗███╗   ██╗██╗  ██╗██╗     ███████╗██████╗
 ██╔════╝██╔══██╗██╔══██╗██║████╗  ██║██║ ██╔╝██║     ██╔════╝██╔══██╗
 ███████╗██████╔╝██████╔╝██║██╔██╗ ██║█████╔╝ ██║     █████╗  ██████╔╝
 ╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║██╔═██╗ ██║     ██╔══╝  ██╔══██╗
 ███████║██║     ██║  ██║██║██║ ╚████║██║  ██╗███████╗███████╗██║  ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝
                        P R E P`

const bannerCompact = "S P R I N K L E R P R E P"

// RenderBanner returns the SPRINKLERPREP banner styled in the primary
// color. Uses a compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
