package pdf

// Row helpers lay out equal-width line fields side by side. All rows are 22
// points tall and return the y just below themselves.

const rowHeight = 22

// LineRow2 draws two fields split evenly across w.
func LineRow2(s Surface, l1, v1, l2, v2 string, x, y, w float64) float64 {
	const gap = 12
	colW := (w - gap) / 2
	LineField(s, l1, v1, NewRect(x, y, colW, rowHeight))
	LineField(s, l2, v2, NewRect(x+colW+gap, y, colW, rowHeight))
	return y + rowHeight
}

// LineRow3 draws three fields split evenly across w.
func LineRow3(s Surface, l1, v1, l2, v2, l3, v3 string, x, y, w float64) float64 {
	const gap = 12
	colW := (w - gap*2) / 3
	LineField(s, l1, v1, NewRect(x, y, colW, rowHeight))
	LineField(s, l2, v2, NewRect(x+colW+gap, y, colW, rowHeight))
	LineField(s, l3, v3, NewRect(x+(colW+gap)*2, y, colW, rowHeight))
	return y + rowHeight
}

// LineRow4 draws four fields split evenly across w.
func LineRow4(s Surface, l1, v1, l2, v2, l3, v3, l4, v4 string, x, y, w float64) float64 {
	const gap = 10
	colW := (w - gap*3) / 4
	LineField(s, l1, v1, NewRect(x, y, colW, rowHeight))
	LineField(s, l2, v2, NewRect(x+colW+gap, y, colW, rowHeight))
	LineField(s, l3, v3, NewRect(x+(colW+gap)*2, y, colW, rowHeight))
	LineField(s, l4, v4, NewRect(x+(colW+gap)*3, y, colW, rowHeight))
	return y + rowHeight
}

// LongLine draws a single full-width field with a wide caption, used for
// free-text rows like Observaciones.
func LongLine(s Surface, label, value string, x, y, w float64) float64 {
	const labelW = 96

	s.DrawText(label, NewRect(x, y, labelW, rowHeight),
		TextStyle{Font: Font{Size: 9, Bold: true}, Color: Black, Align: AlignLeft})

	valueRect := NewRect(x+labelW, y, w-labelW, rowHeight)
	s.DrawText(value, valueRect, TextStyle{Font: Font{Size: 9}, Color: Black, Align: AlignLeft})
	s.StrokeLine(valueRect.X, valueRect.MaxY()-2, valueRect.MaxX(), valueRect.MaxY()-2, 1, RuleColor)

	return y + rowHeight
}
