// Package pdf renders printable documents. All drawing goes through the
// Surface interface so that layout code can be exercised against a recording
// implementation in tests while production uses the PDF byte encoder.
//
// Coordinates are top-left origin with y growing downward, in points.
package pdf

import "image"

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Inset returns the rectangle shrunk by dx horizontally and dy vertically on
// each side.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

func RGB(r, g, b float64) Color          { return Color{R: r, G: g, B: b, A: 1} }
func RGBA(r, g, b, a float64) Color      { return Color{R: r, G: g, B: b, A: a} }
func Gray(v float64) Color               { return Color{R: v, G: v, B: v, A: 1} }
func (c Color) WithAlpha(a float64) Color { c.A = a; return c }

// Align controls horizontal text placement inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects one of the built-in faces at a given size.
type Font struct {
	Size float64
	Bold bool
}

// TextStyle bundles everything DrawText needs besides the string itself.
type TextStyle struct {
	Font  Font
	Color Color
	Align Align
}

// Point is a coordinate pair used by polyline strokes.
type Point struct {
	X, Y float64
}

// Surface is the drawing target for document layout. Implementations must
// treat every call between two BeginPage calls as belonging to the earlier
// page. Angles are in radians; arcs sweep clockwise in page coordinates
// (positive sweep from the start angle, matching y-down geometry).
type Surface interface {
	// BeginPage starts a new page of the given size. The first page must
	// also be opened explicitly.
	BeginPage(width, height float64)

	// DrawText draws a single line of text inside rect. The text baseline
	// is derived from the rect's vertical center; the string is never
	// wrapped or clipped.
	DrawText(text string, rect Rect, style TextStyle)

	StrokeLine(x1, y1, x2, y2 float64, width float64, color Color)
	FillRect(rect Rect, color Color)
	StrokeRect(rect Rect, width float64, color Color)

	// FillRoundedRect fills rect with corners rounded by radius. A radius
	// of zero degrades to FillRect.
	FillRoundedRect(rect Rect, radius float64, color Color)

	// FillEllipse fills the ellipse inscribed in rect.
	FillEllipse(rect Rect, color Color)

	// StrokeArc strokes a circular arc centered at (cx, cy). start is the
	// angle of the first point, sweep the signed angular extent.
	StrokeArc(cx, cy, radius, start, sweep float64, width float64, color Color)

	// StrokePolyline strokes connected segments through pts.
	StrokePolyline(pts []Point, width float64, color Color)

	// DrawImage draws img scaled to fit inside rect preserving aspect
	// ratio, centered on both axes.
	DrawImage(img image.Image, rect Rect)
}
