package swipe

import "fmt"

// Cursor tracks the current position in the queue along with the
// paging parameters. Position always satisfies 0 <= Position <= queue
// length; Position == length signals exhaustion (no current item).
// Only the Engine mutates Position.
type Cursor struct {
	Position      int
	PageSize      int // items shown simultaneously, >= 1
	StepSize      int // positions moved per advance/retreat, >= 1
	PreloadRadius int // extra items decoded ahead/behind the page, >= 0
}

// NewCursor returns a cursor at position 0 with validated paging
// parameters. Invalid parameters are a configuration bug and panic.
func NewCursor(pageSize, stepSize, preloadRadius int) Cursor {
	c := Cursor{PageSize: pageSize, StepSize: stepSize, PreloadRadius: preloadRadius}
	c.validate()
	return c
}

func (c Cursor) validate() {
	if c.PageSize < 1 {
		panic(fmt.Sprintf("swipe: page size must be >= 1, got %d", c.PageSize))
	}
	if c.StepSize < 1 {
		panic(fmt.Sprintf("swipe: step size must be >= 1, got %d", c.StepSize))
	}
	if c.PreloadRadius < 0 {
		panic(fmt.Sprintf("swipe: preload radius must be >= 0, got %d", c.PreloadRadius))
	}
}

// Exhausted reports whether the cursor is past the last item of a
// queue of the given length.
func (c Cursor) Exhausted(length int) bool {
	return c.Position >= length
}

// windowBounds returns the inclusive index range [lo, hi] that should
// be resident for this cursor over a queue of the given length. The
// range is empty (lo > hi) at exhaustion.
func (c Cursor) windowBounds(length int) (lo, hi int) {
	if c.Exhausted(length) {
		return 0, -1
	}
	lo = c.Position - c.PreloadRadius
	if lo < 0 {
		lo = 0
	}
	hi = c.Position + c.PageSize - 1 + c.PreloadRadius
	if hi > length-1 {
		hi = length - 1
	}
	return lo, hi
}
