package grid

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-grid/pkg/layout"
)

// Option is a functional option for configuring a Widget.
type Option func(*Widget) error

// WithViewport restricts Show to the given rectangle of the grid's local
// coordinate space, typically the visible part of a scroll area. Without it
// Show lays out the full extent.
func WithViewport(r layout.Rect) Option {
	return func(w *Widget) error {
		if !r.IsFinite() {
			return fmt.Errorf("viewport must be finite, got %+v", r)
		}
		w.viewport = &r
		return nil
	}
}

// WithID sets the identity used to key persisted metadata for this widget.
func WithID(id string) Option {
	return func(w *Widget) error {
		w.id = id
		return nil
	}
}

// WithLogger sets the logger used for debug output. Default discards.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		w.logger = l
		return nil
	}
}
