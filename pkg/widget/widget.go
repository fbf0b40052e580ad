package widget

import "github.com/odvcencio/tessera/pkg/screen"

// RenderingHints carries per-frame context down the widget tree.
// Active marks the widget on the focus path so it can render cursors
// or highlights.
type RenderingHints struct {
	Active bool
}

// Widget is anything that can report a size demand and draw itself.
//
// Draw must stay within the given window and must not assume the
// window matches the demand: layouts may hand out less than Min or
// more than Max when space forces it, and widgets render a best
// effort at whatever size they get.
type Widget interface {
	SpaceDemand() Demand2D
	Draw(win screen.Window, hints RenderingHints)
}
