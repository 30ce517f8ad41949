package pdf

// Page geometry for the printable intake form (US Letter portrait).
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0

	FormMarginX      = 22.0
	FormMarginTop    = 18.0
	FormMarginBottom = 18.0
)

// FormContentWidth is the usable width between the side margins.
const FormContentWidth = LetterWidth - FormMarginX*2

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)

	// RuleColor is the faint baseline under write-in fields.
	RuleColor = Black.WithAlpha(0.25)

	subtleInk = Black.WithAlpha(0.8)
)

// SectionTitle draws an upper-case block heading and returns the next y.
func SectionTitle(s Surface, text string, x, y, w float64) float64 {
	s.DrawText(text, NewRect(x, y, w, 14), TextStyle{Font: Font{Size: 10.5, Bold: true}, Color: subtleInk, Align: AlignLeft})
	return y + 14
}

// MiniGridTitle draws a smaller heading used above the RX grids.
func MiniGridTitle(s Surface, text string, x, y, w float64) float64 {
	s.DrawText(text, NewRect(x, y, w, 12), TextStyle{Font: Font{Size: 9.5, Bold: true}, Color: subtleInk, Align: AlignLeft})
	return y + 12
}
