package site

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestStripProgress(t *testing.T) {
	t.Parallel()

	t.Run("ratio follows offset", func(t *testing.T) {
		t.Parallel()
		p := newStripProgress(20)
		require.InDelta(t, 0.0, p.ratio(0, 100), 1e-9)
		require.InDelta(t, 0.5, p.ratio(50, 100), 1e-9)
		require.InDelta(t, 1.0, p.ratio(100, 100), 1e-9)
	})

	t.Run("ratio is clamped", func(t *testing.T) {
		t.Parallel()
		p := newStripProgress(20)
		require.InDelta(t, 1.0, p.ratio(150, 100), 1e-9)
		require.InDelta(t, 0.0, p.ratio(-5, 100), 1e-9)
	})

	t.Run("degenerate limit renders empty", func(t *testing.T) {
		t.Parallel()
		p := newStripProgress(20)
		require.InDelta(t, 0.0, p.ratio(10, 0), 1e-9)

		view := ansi.Strip(p.View("paused", 10, 0))
		require.True(t, strings.HasPrefix(view, "paused "))
		require.Equal(t, strings.Repeat("·", 20), strings.TrimPrefix(view, "paused "))
	})

	t.Run("narrow widths keep a minimum bar", func(t *testing.T) {
		t.Parallel()
		p := newStripProgress(1)
		require.Equal(t, 4, p.bar.Width)
	})
}
