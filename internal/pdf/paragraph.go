package pdf

import "strings"

// DrawParagraph greedily word-wraps text into rect and draws one line per
// row of lineH points. Explicit newlines start a new line; lines that no
// longer fit the rect are dropped.
func DrawParagraph(s Surface, text string, rect Rect, style TextStyle, lineH float64) {
	y := rect.Y
	for _, para := range strings.Split(text, "\n") {
		lines := wrapLine(para, rect.W, style.Font)
		for _, line := range lines {
			if y+lineH > rect.MaxY()+1 {
				return
			}
			s.DrawText(line, NewRect(rect.X, y, rect.W, lineH), style)
			y += lineH
		}
		if len(lines) == 0 {
			y += lineH
		}
	}
}

func wrapLine(text string, width float64, font Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if MeasureText(candidate, font) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}
