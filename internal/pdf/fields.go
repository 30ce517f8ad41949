package pdf

import "math"

// Form field primitives. A line field prints its caption to the left of the
// value with a baseline rule underneath, so blank values still come out as a
// line to fill in by hand.

var (
	fieldLabelFont = Font{Size: 8.5, Bold: true}
	fieldValueFont = Font{Size: 9}
)

// LineField draws one captioned field inside rect.
func LineField(s Surface, label, value string, rect Rect) {
	labelW := math.Min(80, rect.W*0.40)

	s.DrawText(label, NewRect(rect.X, rect.Y, labelW, rect.H),
		TextStyle{Font: fieldLabelFont, Color: Black, Align: AlignLeft})

	valueRect := NewRect(rect.X+labelW+4, rect.Y, rect.W-labelW-4, rect.H)
	s.DrawText(value, valueRect, TextStyle{Font: fieldValueFont, Color: Black, Align: AlignLeft})

	s.StrokeLine(valueRect.X, rect.MaxY()-2, rect.MaxX(), rect.MaxY()-2, 1, RuleColor)
}

// InlineLabel draws a bare caption with no rule, used before mini fields.
func InlineLabel(s Surface, text string, rect Rect, labelW float64) {
	s.DrawText(text, NewRect(rect.X, rect.Y, labelW, rect.H),
		TextStyle{Font: Font{Size: 9, Bold: true}, Color: Black, Align: AlignLeft})
}

// SmallLineField stacks a tiny caption above the value, for narrow fields.
func SmallLineField(s Surface, label, value string, x, y, w, h float64) {
	s.DrawText(label, NewRect(x, y-2, w, 10),
		TextStyle{Font: Font{Size: 7.8, Bold: true}, Color: Black.WithAlpha(0.75), Align: AlignLeft})
	s.DrawText(value, NewRect(x, y+8, w, h-8),
		TextStyle{Font: fieldValueFont, Color: Black, Align: AlignLeft})
	s.StrokeLine(x, y+h-2, x+w, y+h-2, 1, RuleColor)
}

// CheckBox draws a square check with a label to its right.
func CheckBox(s Surface, label string, checked bool, x, y, w, h float64) {
	const boxSize = 11
	box := NewRect(x, y+3, boxSize, boxSize)
	SquareCheck(s, checked, box)

	s.DrawText(label, NewRect(box.MaxX()+5, y, w-boxSize-5, h),
		TextStyle{Font: Font{Size: 8.6, Bold: true}, Color: Black, Align: AlignLeft})
}

// SquareCheck draws the checkbox outline, with a check mark when set.
func SquareCheck(s Surface, checked bool, rect Rect) {
	s.StrokeRect(rect, 0.8, Black.WithAlpha(0.45))
	if checked {
		s.StrokePolyline([]Point{
			{X: rect.X + 2, Y: rect.MidY()},
			{X: rect.MidX() - 1, Y: rect.MaxY() - 2},
			{X: rect.MaxX() - 2, Y: rect.Y + 2},
		}, 1.6, Black.WithAlpha(0.7))
	}
}
