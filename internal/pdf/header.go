package pdf

import (
	"image"
	"time"
)

// Fixed copy printed on every intake form.
const (
	headerSlogan = "La mejor atención en servicio óptico"

	privacyTitle = "AVISO DE PRIVACIDAD"
	privacyBody  = "Sus datos están protegidos por Atención Integral en Servicios de Salud " +
		"Vision Wow S de RL de CV y/o Cuper Pay SAPI de CV quienes utilizarán sus datos " +
		"personales recabados con los siguientes fines: Fines médicos y fines bancarios. " +
		"Para mayor información sobre el tratamiento de sus datos personales usted puede " +
		"acudir a nuestras instalaciones o a: www.visionwow.com.mx " +
		"TIENDA EN LÍNEA: www.visionwow.com.mx/tienda/"

	branchesLine1 = "Sucursales Cd. México / Toluca   Tels: 555754-5423"
	branchesLine2 = "WhatsApp: 553342-8515"
)

// TopHeaderRow draws the three-part form header: logo, privacy notice box
// and branch contact block. Returns the y below the row.
func TopHeaderRow(s Surface, x, y, w float64, logo image.Image) float64 {
	const (
		rowH   = 78
		logoW  = 92
		rightW = 190
		gap    = 10
	)
	privacyW := w - logoW - rightW - gap*2

	logoRect := NewRect(x, y, logoW, rowH)
	privacyRect := NewRect(logoRect.MaxX()+gap, y, privacyW, rowH)
	rightRect := NewRect(privacyRect.MaxX()+gap, y, rightW, rowH)

	s.DrawImage(logo, logoRect.Inset(4, 6))

	s.DrawText(headerSlogan, NewRect(privacyRect.X, privacyRect.Y-2, privacyRect.W, 12),
		TextStyle{Font: Font{Size: 8.5, Bold: true}, Color: Gray(0.33), Align: AlignCenter})

	privacyBox(s, privacyRect.Inset(4, 14))

	s.DrawText(branchesLine1, NewRect(rightRect.X, rightRect.Y+8, rightRect.W, 12),
		TextStyle{Font: Font{Size: 8.2, Bold: true}, Color: Black, Align: AlignRight})
	s.DrawText(branchesLine2, NewRect(rightRect.X, rightRect.Y+20, rightRect.W, 12),
		TextStyle{Font: Font{Size: 8.2, Bold: true}, Color: Black, Align: AlignRight})

	return y + rowH
}

func privacyBox(s Surface, rect Rect) {
	s.FillRoundedRect(rect, 6, White)
	s.StrokeRect(rect, 0.8, Black.WithAlpha(0.35))

	const pad = 6
	titleRect := NewRect(rect.X+pad, rect.Y+3, rect.W-pad*2, 10)
	s.DrawText(privacyTitle, titleRect,
		TextStyle{Font: Font{Size: 8.2, Bold: true}, Color: Black, Align: AlignCenter})

	bodyRect := NewRect(rect.X+pad, titleRect.MaxY()+2, rect.W-pad*2, rect.MaxY()-(titleRect.MaxY()+2))
	DrawParagraph(s, privacyBody, bodyRect, TextStyle{Font: Font{Size: 7.2}, Color: Black, Align: AlignLeft}, 8)
}

// DateRow draws the right-aligned issue date with its baseline rule and
// returns the y below it.
func DateRow(s Surface, x, y, w float64, now time.Time) float64 {
	const rightW = 220
	rect := NewRect(x+w-rightW, y, rightW, 16)

	s.DrawText("Fecha:", NewRect(rect.X, rect.Y, 38, rect.H),
		TextStyle{Font: Font{Size: 9.5, Bold: true}, Color: Black, Align: AlignLeft})

	valueRect := NewRect(rect.X+40, rect.Y, rect.W-40, rect.H)
	s.DrawText(FormatDMY(now), valueRect,
		TextStyle{Font: Font{Size: 9.5}, Color: Black, Align: AlignLeft})

	s.StrokeLine(valueRect.X, valueRect.MaxY()-2, valueRect.MaxX(), valueRect.MaxY()-2, 1, RuleColor)

	return y + rect.H
}

// FormatDMY renders a date the way the printed forms expect it.
func FormatDMY(t time.Time) string {
	return t.Format("02 / 01 / 06")
}

// Age returns whole years elapsed from dob to now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
