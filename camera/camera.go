// Package camera maps the fixed table onto a window of any size.
package camera

// Camera fits the world into the viewport, preserving aspect ratio and
// centring it with letterbox bars. The table is laid out once, so a
// resize or fullscreen toggle only changes the fit.
type Camera struct {
	// World dimensions (the layout viewport)
	WorldW, WorldH float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom is screen pixels per world unit
	Zoom float32

	// Screen position of the world origin
	OffsetX, OffsetY float32
}

// New creates a camera fitting a worldW×worldH world into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and recomputes the fit.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if c.WorldW <= 0 || c.WorldH <= 0 || viewportW <= 0 || viewportH <= 0 {
		c.Zoom, c.OffsetX, c.OffsetY = 1, 0, 0
		return
	}

	c.Zoom = min(viewportW/c.WorldW, viewportH/c.WorldH)
	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom, c.OffsetY + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX) / c.Zoom, (sy - c.OffsetY) / c.Zoom
}

// Contains reports whether a screen point falls on the world area rather
// than a letterbox bar.
func (c *Camera) Contains(sx, sy float32) bool {
	wx, wy := c.ScreenToWorld(sx, sy)
	return wx >= 0 && wy >= 0 && wx <= c.WorldW && wy <= c.WorldH
}

// Identity reports whether world and screen coordinates coincide.
func (c *Camera) Identity() bool {
	return c.Zoom == 1 && c.OffsetX == 0 && c.OffsetY == 0
}
