package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pageerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func TestLightboxReferenceScenario(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	require.NoError(t, o.OpenImage(0))
	idx, open := o.Snapshot().SelectedImageIndex()
	require.True(t, open)
	assert.Equal(t, 0, idx)

	o.NextImage()
	assert.Equal(t, 1, o.Snapshot().SelectedImage)

	o.PrevImage()
	o.PrevImage()
	assert.Equal(t, 5, o.Snapshot().SelectedImage)
	assert.Equal(t, "6 of 6", o.Lightbox.Position())

	o.CloseImage()
	_, open = o.Snapshot().SelectedImageIndex()
	assert.False(t, open)

	o.NextImage()
	_, open = o.Snapshot().SelectedImageIndex()
	assert.False(t, open, "next on a closed lightbox is a no-op")
	assert.Empty(t, o.Lightbox.Position())
}

func TestLightboxCyclesBackAfterNSteps(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	n := o.Lightbox.Size()

	for start := 0; start < n; start++ {
		require.NoError(t, o.OpenImage(start))
		for i := 0; i < n; i++ {
			o.NextImage()
		}
		assert.Equal(t, start, o.Snapshot().SelectedImage, "next^N from %d", start)

		for i := 0; i < n; i++ {
			o.PrevImage()
		}
		assert.Equal(t, start, o.Snapshot().SelectedImage, "prev^N from %d", start)
		o.CloseImage()
	}
}

func TestLightboxRejectsOutOfRangeIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "negative", index: -1},
		{name: "equal to size", index: 6},
		{name: "far beyond", index: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _ := newTestOrchestrator(t)
			err := o.OpenImage(tt.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, pageerrors.ErrContract))
			assert.False(t, o.Snapshot().LightboxOpen)
			assert.Zero(t, o.ActiveListeners())
		})
	}
}

func TestLightboxOpenThenCloseAlwaysCloses(t *testing.T) {
	for i := 0; i < 6; i++ {
		o, _ := newTestOrchestrator(t)
		require.NoError(t, o.OpenImage(i))
		o.CloseImage()
		assert.False(t, o.Snapshot().LightboxOpen)
		assert.Zero(t, o.ActiveListeners())
	}
}

func TestLightboxKeysOnlyWhileOpen(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	assert.False(t, o.Key(KeyRight), "closed lightbox must not consume keys")
	assert.False(t, o.Key(KeyEscape))

	require.NoError(t, o.OpenImage(2))
	assert.True(t, o.Key(KeyRight))
	assert.Equal(t, 3, o.Snapshot().SelectedImage)
	assert.True(t, o.Key(KeyLeft))
	assert.True(t, o.Key(KeyLeft))
	assert.Equal(t, 1, o.Snapshot().SelectedImage)
	assert.False(t, o.Key(KeyOther))

	assert.True(t, o.Key(KeyEscape))
	assert.False(t, o.Snapshot().LightboxOpen)
	assert.False(t, o.Key(KeyLeft))
}

func TestLightboxOverlayClick(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	require.NoError(t, o.OpenImage(4))

	o.Click(Click{Region: RegionLightboxContent, Primary: true})
	assert.True(t, o.Snapshot().LightboxOpen, "clicks on the image keep the lightbox open")

	o.Click(Click{Region: RegionOverlay, Primary: false})
	assert.True(t, o.Snapshot().LightboxOpen, "secondary clicks are ignored")

	o.Click(Click{Region: RegionOverlay, Primary: true})
	assert.False(t, o.Snapshot().LightboxOpen)
}

func TestLightboxOpenClickDoesNotCloseItself(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	o.Click(Click{Region: RegionPage, Primary: true})
	require.NoError(t, o.OpenImage(1))
	assert.True(t, o.Snapshot().LightboxOpen)
}

func TestLightboxReopenMovesIndexWithoutExtraListeners(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	require.NoError(t, o.OpenImage(1))
	before := o.ActiveListeners()
	require.NoError(t, o.OpenImage(3))
	assert.Equal(t, 3, o.Snapshot().SelectedImage)
	assert.Equal(t, before, o.ActiveListeners())
}

func TestLightboxEmptyGallery(t *testing.T) {
	o, _ := newTestOrchestrator(t, func(opts *Options) { opts.GallerySize = 0 })
	require.Error(t, o.OpenImage(0))
	o.NextImage()
	o.PrevImage()
	assert.False(t, o.Snapshot().LightboxOpen)
}
