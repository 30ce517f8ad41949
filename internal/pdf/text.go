package pdf

// Glyph widths for the built-in Helvetica faces, in 1/1000 em, covering the
// printable ASCII range. Accented Latin-1 letters reuse the width of their
// base letter, which is exact for Helvetica's Latin-1 supplement.

var helvWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278,
	584, 584, 584, 556, 1015, 667, 667, 722, 722, 667, 611, 778, 722, 278,
	500, 667, 556, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 278, 278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556, 556, 556, 333, 500,
	278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

var helvBoldWidths = [95]int{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333,
	584, 584, 584, 611, 975, 722, 722, 722, 722, 667, 611, 778, 722, 278,
	556, 722, 611, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 333, 278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
	333, 611, 611, 278, 278, 556, 278, 889, 611, 611, 611, 611, 389, 556,
	333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

// accentBase folds the Latin-1 letters this system actually prints (Spanish
// clinical forms) down to their ASCII base for width lookup.
var accentBase = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U', 'Ñ': 'N',
	'°': 'o', '±': '+', '¿': '?', '¡': '!',
}

func glyphWidth(r rune, bold bool) int {
	if base, ok := accentBase[r]; ok {
		r = base
	}
	if r < 32 || r > 126 {
		// Unknown glyphs are rendered as '?' by the encoder too.
		r = '?'
	}
	if bold {
		return helvBoldWidths[r-32]
	}
	return helvWidths[r-32]
}

// MeasureText returns the rendered width of text in points for the given
// font. Layout code uses it for right- and center-aligned placement.
func MeasureText(text string, font Font) float64 {
	total := 0
	for _, r := range text {
		total += glyphWidth(r, font.Bold)
	}
	return float64(total) * font.Size / 1000
}

// encodeWinAnsi converts a string to the byte encoding the built-in fonts
// declare. Runes outside Latin-1 fall back to '?'.
func encodeWinAnsi(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		switch {
		case r == '–' || r == '—': // dashes seen in free-text fields
			out = append(out, '-')
		case r == '‘' || r == '’':
			out = append(out, '\'')
		case r == '“' || r == '”':
			out = append(out, '"')
		case r < 256:
			out = append(out, byte(r))
		default:
			out = append(out, '?')
		}
	}
	return out
}

// escapePDFString escapes the characters that terminate or nest PDF literal
// strings.
func escapePDFString(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return out
}
