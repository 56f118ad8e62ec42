package site

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// stripProgress shows how far the review strip has travelled before it wraps.
type stripProgress struct {
	bar progress.Model
}

func newStripProgress(width int) stripProgress {
	bar := progress.New(
		progress.WithSolidFill(string(goldColor)),
		progress.WithoutPercentage(),
	)
	bar.Width = max(width, 4)
	bar.Empty = '·'
	return stripProgress{bar: bar}
}

// View renders the bar for offset within [0, limit]. A strip that cannot
// move renders empty.
func (p stripProgress) View(label string, offset, limit float64) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, mutedStyle.Render(label), " ", p.bar.ViewAs(p.ratio(offset, limit)))
}

func (p stripProgress) ratio(offset, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, offset/limit))
}
