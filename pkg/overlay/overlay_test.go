package overlay_test

import (
	"testing"

	"go-portfolio-backend/pkg/overlay"

	"github.com/stretchr/testify/assert"
)

func TestViewerEscape(t *testing.T) {
	t.Run("Escape closes the open viewer and detaches the observer", func(t *testing.T) {
		bus := overlay.NewKeyBus()
		viewer := overlay.NewViewer(bus)

		viewer.Open("resume.pdf")
		url, open := viewer.Current()
		assert.True(t, open)
		assert.Equal(t, "resume.pdf", url)
		assert.Equal(t, 1, bus.Count())

		bus.Press()
		_, open = viewer.Current()
		assert.False(t, open)
		assert.Equal(t, 0, bus.Count())

		// second escape reaches no observer
		bus.Press()
		_, open = viewer.Current()
		assert.False(t, open)
	})

	t.Run("Re-opening replaces the resource without stacking observers", func(t *testing.T) {
		bus := overlay.NewKeyBus()
		viewer := overlay.NewViewer(bus)

		viewer.Open("resume_en.pdf")
		viewer.Open("resume_jp.pdf")
		assert.Equal(t, 1, bus.Count())

		url, open := viewer.Current()
		assert.True(t, open)
		assert.Equal(t, "resume_jp.pdf", url)
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		bus := overlay.NewKeyBus()
		viewer := overlay.NewViewer(bus)

		viewer.Open("certificate.png")
		viewer.Close()
		viewer.Close()
		assert.Equal(t, 0, bus.Count())
	})

	t.Run("Independent viewers do not close each other", func(t *testing.T) {
		bus := overlay.NewKeyBus()
		resume := overlay.NewViewer(bus)
		lightbox := overlay.NewViewer(bus)

		resume.Open("resume.pdf")
		lightbox.Open("photo.jpg")
		assert.Equal(t, 2, bus.Count())

		resume.Close()
		_, open := lightbox.Current()
		assert.True(t, open)
		assert.Equal(t, 1, bus.Count())
	})
}
