package wrappers

// ActiveRegion is the clickable area of the screen, spanning
// [XLow, XHigh) x [YLow, YHigh)
type ActiveRegion struct {
	XLow  int
	YLow  int
	XHigh int
	YHigh int
}

// Region is a rectangle given by its top-left corner and size. Unlike
// ActiveRegion, a Region includes its far edges, so it covers
// [X, X+Width] x [Y, Y+Height].
type Region struct {
	X      int
	Width  int
	Y      int
	Height int
}

// Contains returns whether the point (x, y) is in the region
func (r Region) Contains(x, y int) bool {
	return r.X <= x && x <= r.X+r.Width && r.Y <= y && y <= r.Y+r.Height
}

// Default click grid used by world-of-bits environments. The
// clickable browser area is 160 x 210 pixels, offset by (10, 125).
var (
	DefaultActiveRegion      = ActiveRegion{10, 75 + 50, 10 + 160, 75 + 210}
	DefaultDiscreteMouseStep = 10
)
