package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗██╗
 ██╔════╝██╔═══██╗██╔══██╗██╔════╝██╔══██╗██║██║
 ██║     ██║   ██║██║  ██║█████╗  ██████╔╝██║██║
 ██║     ██║   ██║██║  ██║██╔══╝  ██╔══██╗██║██║
 ╚██████╗╚██████╔╝██████╔╝███████╗██║  ██║██║███████╗
  ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝`

const bannerCompact = "C O D E R I L"

// RenderBanner returns the CODERIL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
