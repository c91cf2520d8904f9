// pkg/physics/collision.go
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether the point lies inside the rectangle, edges included
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.X && point.X <= r.Right() &&
		point.Y >= r.Y && point.Y <= r.Bottom()
}

// Expand returns the rectangle grown by offset on every side
func (r Rect) Expand(offset float64) Rect {
	return Rect{
		X:      r.X - offset,
		Y:      r.Y - offset,
		Width:  r.Width + 2*offset,
		Height: r.Height + 2*offset,
	}
}

// Edge identifies which pair of rectangle edges a point was caught by
type Edge int

const (
	// EdgeNone means the point is in no hit band
	EdgeNone Edge = iota
	// EdgeHorizontal is the band just above the top edge or just below the bottom edge
	EdgeHorizontal
	// EdgeVertical is the band just left of the left edge or just right of the right edge
	EdgeVertical
)

// String returns a readable edge name for logs
func (e Edge) String() string {
	switch e {
	case EdgeHorizontal:
		return "horizontal"
	case EdgeVertical:
		return "vertical"
	default:
		return "none"
	}
}

// EdgeHit reports which hit band of r, if any, contains point.
//
// Each band is offset units thick and lies outside the rectangle. The
// horizontal bands are checked first; a point matching both would report
// EdgeHorizontal. A point strictly inside the rectangle hits nothing, so a
// fast mover can pass through a thin rectangle between two samples.
func EdgeHit(point Vector2D, r Rect, offset float64) Edge {
	if inHorizontalBand(point, r, offset) {
		return EdgeHorizontal
	}
	if inVerticalBand(point, r, offset) {
		return EdgeVertical
	}
	return EdgeNone
}

func inHorizontalBand(p Vector2D, r Rect, offset float64) bool {
	if p.X < r.X || p.X > r.Right() {
		return false
	}
	above := r.Y-offset <= p.Y && p.Y < r.Y
	below := r.Bottom() < p.Y && p.Y <= r.Bottom()+offset
	return above || below
}

func inVerticalBand(p Vector2D, r Rect, offset float64) bool {
	if p.Y < r.Y || p.Y > r.Bottom() {
		return false
	}
	left := r.X-offset <= p.X && p.X < r.X
	right := r.Right() < p.X && p.X <= r.Right()+offset
	return left || right
}
