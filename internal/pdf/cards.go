package pdf

import (
	"sort"
	"strings"
)

// CheckCardHeight is the fixed height of one antecedent check card.
const CheckCardHeight = 118

// checkCardMaxItems is how many rows fit the fixed card height. The generic
// "Otra" option is skipped, anything past the cap is dropped.
const checkCardMaxItems = 7

// CheckCard draws a bordered card with a shaded heading and one check row
// per item, alphabetically by key.
func CheckCard(s Surface, title string, items map[string]bool, rect Rect) {
	s.StrokeRect(rect, 0.8, Black.WithAlpha(0.25))

	const headerH = 16
	header := NewRect(rect.X, rect.Y, rect.W, headerH)
	s.FillRect(header, Black.WithAlpha(0.10))
	s.DrawText(strings.ToUpper(title), header.Inset(6, 2),
		TextStyle{Font: Font{Size: 8, Bold: true}, Color: Black, Align: AlignCenter})

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	const (
		startOffset = 4
		lineH       = 13
		checkSize   = 10
	)
	startY := header.MaxY() + startOffset

	row := 0
	for _, key := range keys {
		if row >= checkCardMaxItems {
			break
		}
		if key == "Otra" {
			continue
		}

		iy := startY + float64(row)*lineH
		s.DrawText(key, NewRect(rect.X+6, iy, rect.W-6-checkSize-6, lineH),
			TextStyle{Font: Font{Size: 7.6}, Color: Black, Align: AlignLeft})

		SquareCheck(s, items[key], NewRect(rect.MaxX()-checkSize-6, iy+1, checkSize, checkSize))

		row++
	}
}
