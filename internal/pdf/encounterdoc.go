package pdf

import (
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/visionwow/visionwow/internal/domain/encounter"
	"github.com/visionwow/visionwow/internal/domain/patient"
)

// RenderEncounterDocument draws the printable clinical history form for a
// single visit. The caller is responsible for loading the logo; the form is
// never rendered without it.
func RenderEncounterDocument(s Surface, enc *encounter.Encounter, p *patient.Patient, logo image.Image, now time.Time) {
	s.BeginPage(LetterWidth, LetterHeight)

	x := float64(FormMarginX)
	w := float64(FormContentWidth)
	y := float64(FormMarginTop)

	y = TopHeaderRow(s, x, y, w, logo)
	y += 8
	y = DateRow(s, x, y, w, now)
	y += 10

	y = drawClinicalHistory(s, enc, p, x, y, w) + 10
	y = drawPersonalData(s, p, x, y, w, now) + 10
	y = drawAntecedentsGrid(s, enc, x, y, w) + 10

	// The exam grid never splits across a page boundary.
	if y+220 > LetterHeight-FormMarginBottom {
		s.BeginPage(LetterWidth, LetterHeight)
		y = FormMarginTop
	}
	y = drawExamBlock(s, enc, x, y, w) + 10

	if y+90 > LetterHeight-FormMarginBottom {
		s.BeginPage(LetterWidth, LetterHeight)
		y = FormMarginTop
	}
	drawPaymentBlock(s, enc, x, y, w)
}

func drawClinicalHistory(s Surface, enc *encounter.Encounter, p *patient.Patient, x, y, w float64) float64 {
	y = SectionTitle(s, "HISTORIA CLÍNICA", x, y, w) + 6

	const gap = 10.0
	smallW := (w * 0.44) / 3

	InlineLabel(s, "Antigüedad", Rect{X: x, Y: y, W: 72, H: rowHeight}, 72)
	seniority := []struct {
		label string
		value *int
	}{
		{"Años", enc.SeniorityYears},
		{"Meses", enc.SeniorityMonths},
		{"Semanas", enc.SeniorityWeeks},
	}
	for i, f := range seniority {
		fx := x + 80 + (smallW+gap)*float64(i)
		SmallLineField(s, f.label, intText(f.value), fx, y, smallW-10, rowHeight)
	}

	checkEach := (w - smallW*3 - gap*4) / 2
	checkX := x + w - checkEach*2
	CheckBox(s, "Planta", enc.IsPlant, checkX, y, checkEach, rowHeight)
	CheckBox(s, "Eventual", enc.IsEventual, checkX+checkEach, y, checkEach, rowHeight)
	y += rowHeight + 8

	y = LineRow3(s,
		"Empresa", enc.CompanyName,
		"Suc", enc.Branch,
		"No. Empleado", strText(enc.EmployeeNumber),
		x, y, w) + 8
	y = LineRow2(s,
		"Depto", enc.Department,
		"Jefe inmediato", enc.DirectBoss,
		x, y, w) + 8

	w1, w2, w3 := w*0.22, w*0.38, w*0.28
	w4 := w - w1 - w2 - w3 - gap*3
	LineField(s, "Turno", enc.Shift, Rect{X: x, Y: y, W: w1, H: rowHeight})
	LineField(s, "Horario", scheduleText(enc.EntryTime, enc.ExitTime), Rect{X: x + w1 + gap, Y: y, W: w2, H: rowHeight})
	LineField(s, "Tel. Oficina", strText(enc.OfficePhone), Rect{X: x + w1 + w2 + gap*2, Y: y, W: w3, H: rowHeight})
	LineField(s, "Ext", strText(enc.ExtensionNumber), Rect{X: x + w1 + w2 + w3 + gap*3, Y: y, W: w4, H: rowHeight})
	y += rowHeight + 8

	y = LineRow2(s,
		"Correo Empresa", enc.CompanyEmail,
		"Correo Personal", strText(p.PersonalEmail),
		x, y, w) + 8
	return y
}

func drawPersonalData(s Surface, p *patient.Patient, x, y, w float64, now time.Time) float64 {
	dob, age := "", ""
	if p.DateOfBirth != nil {
		dob = FormatDMY(*p.DateOfBirth)
		age = strconv.Itoa(Age(*p.DateOfBirth, now))
	}

	y = LineRow2(s,
		"Nombre(s)", p.FirstName,
		"Apellidos", p.LastName,
		x, y, w) + 8
	y = LineRow4(s,
		"Fecha Nac", dob,
		"Edad", age,
		"Sexo", p.Sex,
		"Tel. Casa", strText(p.HomePhone),
		x, y, w) + 8
	y = LineRow2(s,
		"Tel. Cel", strText(p.CellPhone),
		"", "",
		x, y, w) + 2
	return y
}

func drawAntecedentsGrid(s Surface, enc *encounter.Encounter, x, y, w float64) float64 {
	y = SectionTitle(s, "ANTECEDENTES / SÍNTOMAS", x, y, w) + 2

	a := encounter.DecodeAntecedents(enc.AntecedentesJSON)
	if a == nil {
		a = encounter.DefaultAntecedents()
	}

	cards := []struct {
		title string
		items map[string]bool
	}{
		{"Antecedentes", a.Antecedentes},
		{"Síntomas", a.Sintomas},
		{"Anexos", a.Anexos},
		{"Salud ocular", a.SaludOcular},
		{"Conjuntivitis", a.Conjuntivitis},
		{"Computadora", a.Computadora},
		{"Salud", a.Salud},
		{"Consultas", a.Consultas},
	}

	const gap = 10.0
	cardW := (w - gap*3) / 4
	for i, card := range cards {
		col := float64(i % 4)
		row := float64(i / 4)
		CheckCard(s, card.title, card.items, Rect{
			X: x + (cardW+gap)*col,
			Y: y + (CheckCardHeight+gap)*row,
			W: cardW,
			H: CheckCardHeight,
		})
	}
	y += (CheckCardHeight+gap)*2 + 4

	y = LongLine(s, "Observaciones", strText(enc.PayNotes), x, y, w) + 10
	return y
}

func drawExamBlock(s Surface, enc *encounter.Encounter, x, y, w float64) float64 {
	y = SectionTitle(s, "AGUDEZA VISUAL / REFRACTION", x, y, w) + 6

	y = LineRow4(s,
		"OD S/C", enc.VaOdSc,
		"OS S/C", enc.VaOsSc,
		"OD C/C", enc.VaOdCc,
		"OS C/C", enc.VaOsCc,
		x, y, w) + 10

	y = MiniGridTitle(s, "RX OD", x, y, w) + 2
	y = LineRow4(s,
		"SPH", enc.RxOdSph,
		"CYL", enc.RxOdCyl,
		"AXIS", enc.RxOdAxis,
		"ADD", enc.RxOdAdd,
		x, y, w) + 10

	y = MiniGridTitle(s, "RX OS", x, y, w) + 2
	y = LineRow4(s,
		"SPH", enc.RxOsSph,
		"CYL", enc.RxOsCyl,
		"AXIS", enc.RxOsAxis,
		"ADD", enc.RxOsAdd,
		x, y, w) + 10

	y = LineRow3(s,
		"DP", enc.Dp,
		"Tipo de lente", enc.LensType,
		"Uso", enc.Usage,
		x, y, w) + 10

	y = LineRow2(s,
		"Ishihara", enc.Ishihara,
		"Campimetría", enc.Campimetry,
		x, y, w) + 4
	return y
}

func drawPaymentBlock(s Surface, enc *encounter.Encounter, x, y, w float64) float64 {
	y = SectionTitle(s, "PAGO", x, y, w) + 4
	y = LineRow4(s,
		"Estatus", enc.PayStatus,
		"Total", enc.PayTotal,
		"Método", enc.PayMethod,
		"Referencia", enc.PayReference,
		x, y, w) + 8
	y = LineRow2(s,
		"Descuento", strText(enc.PayDiscount),
		"Notas", strText(enc.PayNotes),
		x, y, w) + 2
	return y
}

// scheduleText formats the shift schedule, filling blanks so the printed
// line can be completed by hand.
func scheduleText(entry, exit *string) string {
	from := strings.TrimSpace(strText(entry))
	to := strings.TrimSpace(strText(exit))
	if from == "" {
		from = "____"
	}
	if to == "" {
		to = "____"
	}
	return "de " + from + " a " + to
}

func strText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
