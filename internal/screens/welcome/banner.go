package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/ui/theme"
)

const bannerArt = `  █████╗ ███████╗███╗   ███╗ █████╗ ███╗   ██╗
 ██╔══██╗██╔════╝████╗ ████║██╔══██╗████╗  ██║
 ███████║███████╗██╔████╔██║███████║██╔██╗ ██║
 ██╔══██║╚════██║██║╚██╔╝██║██╔══██║██║╚██╗██║
 ██║  ██║███████║██║ ╚═╝ ██║██║  ██║██║ ╚████║
 ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝`

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 47

// RenderBanner draws the block-letter banner, or spaced letters when the
// terminal cannot fit it.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < bannerWidth+2 {
		return style.Render("A S M A N   L E A R N I N G")
	}
	return style.Render(bannerArt)
}
