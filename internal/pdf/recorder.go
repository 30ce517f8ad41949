package pdf

import "image"

// Op identifies a recorded drawing command.
type Op string

const (
	OpBeginPage Op = "begin_page"
	OpText      Op = "text"
	OpLine      Op = "line"
	OpFillRect  Op = "fill_rect"
	OpRect      Op = "stroke_rect"
	OpRoundRect Op = "fill_round_rect"
	OpEllipse   Op = "fill_ellipse"
	OpArc       Op = "stroke_arc"
	OpPolyline  Op = "polyline"
	OpImage     Op = "image"
)

// Command is one recorded Surface call. Page is the zero-based index of the
// page the command was issued on (-1 before any BeginPage).
type Command struct {
	Op    Op
	Page  int
	Text  string
	Rect  Rect
	Style TextStyle
	X1, Y1, X2, Y2 float64
	Width  float64
	Color  Color
	Radius float64
	Start  float64
	Sweep  float64
	Points []Point
}

// Recorder is a Surface that captures every call. It backs layout tests,
// which assert on geometry and page placement instead of encoded bytes.
type Recorder struct {
	Commands   []Command
	PageW      float64
	PageH      float64
	page       int
}

// NewRecorder returns an empty recorder. The current page index starts at -1
// until the first BeginPage.
func NewRecorder() *Recorder {
	return &Recorder{page: -1}
}

// PageCount returns the number of pages begun so far.
func (r *Recorder) PageCount() int { return r.page + 1 }

// OnPage returns the commands issued on the given page, excluding the
// BeginPage marker itself.
func (r *Recorder) OnPage(page int) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Page == page && c.Op != OpBeginPage {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) BeginPage(width, height float64) {
	r.page++
	r.PageW, r.PageH = width, height
	r.Commands = append(r.Commands, Command{Op: OpBeginPage, Page: r.page, X1: width, Y1: height})
}

func (r *Recorder) DrawText(text string, rect Rect, style TextStyle) {
	r.Commands = append(r.Commands, Command{Op: OpText, Page: r.page, Text: text, Rect: rect, Style: style})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, color Color) {
	r.Commands = append(r.Commands, Command{Op: OpLine, Page: r.page, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: color})
}

func (r *Recorder) FillRect(rect Rect, color Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, Page: r.page, Rect: rect, Color: color})
}

func (r *Recorder) StrokeRect(rect Rect, width float64, color Color) {
	r.Commands = append(r.Commands, Command{Op: OpRect, Page: r.page, Rect: rect, Width: width, Color: color})
}

func (r *Recorder) FillRoundedRect(rect Rect, radius float64, color Color) {
	r.Commands = append(r.Commands, Command{Op: OpRoundRect, Page: r.page, Rect: rect, Radius: radius, Color: color})
}

func (r *Recorder) FillEllipse(rect Rect, color Color) {
	r.Commands = append(r.Commands, Command{Op: OpEllipse, Page: r.page, Rect: rect, Color: color})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, sweep, width float64, color Color) {
	r.Commands = append(r.Commands, Command{
		Op: OpArc, Page: r.page, X1: cx, Y1: cy, Radius: radius,
		Start: start, Sweep: sweep, Width: width, Color: color,
	})
}

func (r *Recorder) StrokePolyline(pts []Point, width float64, color Color) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Commands = append(r.Commands, Command{Op: OpPolyline, Page: r.page, Points: cp, Width: width, Color: color})
}

func (r *Recorder) DrawImage(img image.Image, rect Rect) {
	r.Commands = append(r.Commands, Command{Op: OpImage, Page: r.page, Rect: rect})
}
