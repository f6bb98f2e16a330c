package wrappers

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// Padding around the active region in rendered click grids
const renderMargin = 10

// Render draws the click grid as a PNG image to w. The active region
// is outlined in blue, noclick regions are filled in red, and each
// click point is drawn as a black dot.
func (c *ClickGrid) Render(w io.Writer) error {
	width := c.active.XHigh + renderMargin
	height := c.active.YHigh + renderMargin
	for _, r := range c.noclick {
		if r.X+r.Width+renderMargin > width {
			width = r.X + r.Width + renderMargin
		}
		if r.Y+r.Height+renderMargin > height {
			height = r.Y + r.Height + renderMargin
		}
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGBA(0.9, 0.2, 0.2, 0.5)
	for _, r := range c.noclick {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width),
			float64(r.Height))
		dc.Fill()
	}

	dc.SetRGB(0.2, 0.3, 0.9)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(c.active.XLow), float64(c.active.YLow),
		float64(c.active.XHigh-c.active.XLow),
		float64(c.active.YHigh-c.active.YLow))
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	for _, p := range c.points {
		dc.DrawCircle(float64(p[0]), float64(p[1]), 1.5)
		dc.Fill()
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: could not encode image: %v", err)
	}
	return nil
}
