package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/visionwow/visionwow/internal/domain/encounter"
	"github.com/visionwow/visionwow/internal/pdf"
)

const (
	pageWidth    = 595.0
	pageHeight   = 842.0
	pageMargin   = 40.0
	contentWidth = pageWidth - 2*pageMargin
)

const listMaxRows = 14

// Entry pairs an encounter with the patient identity needed on the listing.
type Entry struct {
	Enc       *encounter.Encounter
	FirstName string
	LastName  string
	Sex       string
}

// Sections selects which report cards are drawn.
type Sections struct {
	Overview    bool `json:"overview"`
	Conversion  bool `json:"conversion"`
	Diopters    bool `json:"diopters"`
	Antecedents bool `json:"antecedents"`
	Listing     bool `json:"listing"`
}

// AllSections enables every card.
func AllSections() Sections {
	return Sections{Overview: true, Conversion: true, Diopters: true, Antecedents: true, Listing: true}
}

// Options carries the report header fields, the section toggles, and the
// filters that produced the encounter set.
type Options struct {
	CompanyName  string
	GeneratedAt  time.Time
	From         *time.Time
	To           *time.Time
	SelectedKeys []string
	Sections     Sections
}

// GeneratePDF lays the corporate report onto the surface. Cards never split
// across pages; a card that does not fit opens a new page first. A zero
// Sections value means the caller did not pick, so every card is drawn.
func GeneratePDF(s pdf.Surface, sum Summary, entries []Entry, opts Options) {
	if opts.Sections == (Sections{}) {
		opts.Sections = AllSections()
	}

	g := &generator{s: s, opts: opts}
	g.newPage()

	if opts.Sections.Overview {
		g.drawCard("Resumen ejecutivo", 130, func(inner pdf.Rect) {
			g.drawExecutiveSummary(inner, sum)
		})
	}
	if opts.Sections.Conversion {
		g.drawCard("Conversión / compra (sobre el total)", 190, func(inner pdf.Rect) {
			drawDonut(s, inner, "Compraron vs. no compraron", sum.Bought, sum.NotBought)
		})
	}
	if opts.Sections.Diopters {
		g.drawCard("Distribución de graduación (dioptrías – esfera)", 220, func(inner pdf.Rect) {
			drawBarChart(s, inner, "Peor ojo (esfera)", sum.Buckets)
		})
	}
	if opts.Sections.Antecedents {
		g.drawCard("Antecedentes / síntomas (Top 10 — Sí vs No)", 280, func(inner pdf.Rect) {
			drawStackedBars(s, inner, "Respuestas marcadas", sum.TopKeys, sum.Total)
		})
		if len(sum.Selected) > 0 {
			g.drawCard("Filtros seleccionados (Sí vs No)", 240, func(inner pdf.Rect) {
				drawStackedBars(s, inner, "Coincidencias por filtro", sum.Selected, sum.Total)
			})
		}
	}
	if opts.Sections.Listing {
		g.drawCard("Listado (extracto)", 330, func(inner pdf.Rect) {
			g.drawListing(inner, entries)
		})
	}
}

type generator struct {
	s    pdf.Surface
	opts Options
	y    float64
}

func (g *generator) newPage() {
	g.s.BeginPage(pageWidth, pageHeight)
	g.y = pageMargin
	g.drawHeader()
	g.y = 110
}

func (g *generator) drawHeader() {
	g.s.FillRect(pdf.NewRect(0, 0, pageWidth, 92), primaryColor.WithAlpha(0.10))
	g.s.FillRect(pdf.NewRect(0, 92, pageWidth, 3), accentColor)

	g.s.DrawText("VisionWow — Reporte corporativo",
		pdf.NewRect(pageMargin, 18, contentWidth, 22),
		pdf.TextStyle{Font: pdf.Font{Size: 16, Bold: true}, Color: pdf.Gray(0.25)})
	g.s.DrawText(g.opts.CompanyName,
		pdf.NewRect(pageMargin, 40, contentWidth, 26),
		pdf.TextStyle{Font: pdf.Font{Size: 24, Bold: true}, Color: primaryColor})
	g.s.DrawText("Generado: "+g.opts.GeneratedAt.Format("02-01-2006"),
		pdf.NewRect(pageMargin, 70, contentWidth, 14),
		pdf.TextStyle{Font: pdf.Font{Size: 11}, Color: subtextColor})
}

func (g *generator) drawCard(title string, h float64, body func(inner pdf.Rect)) {
	rect := pdf.NewRect(pageMargin, g.y, contentWidth, h)
	if rect.MaxY() > pageHeight-pageMargin {
		g.newPage()
		rect = pdf.NewRect(pageMargin, g.y, contentWidth, h)
	}

	g.s.FillRoundedRect(rect, 8, cardBG)
	g.s.StrokeRect(rect, 1, primaryColor.WithAlpha(0.18))
	g.s.DrawText(title, pdf.NewRect(rect.X+14, rect.Y+12, rect.W-28, 18),
		pdf.TextStyle{Font: pdf.Font{Size: 14, Bold: true}, Color: pdf.Gray(0.12)})

	body(pdf.NewRect(rect.X+14, rect.Y+36, rect.W-28, h-50))
	g.y = rect.MaxY() + 14
}

func (g *generator) drawExecutiveSummary(inner pdf.Rect, sum Summary) {
	pills := []struct {
		label string
		value string
	}{
		{"Pacientes revisados", fmt.Sprintf("%d", sum.Total)},
		{"Compraron lentes", fmt.Sprintf("%d", sum.Bought)},
		{"Tasa de compra", fmt.Sprintf("%d%%", sum.Rate)},
	}

	colW := (inner.W - 20) / 3
	for i, p := range pills {
		pill := pdf.NewRect(inner.X+(colW+10)*float64(i), inner.Y, colW, 44)
		g.s.FillRoundedRect(pill, 8, primaryColor.WithAlpha(0.08))
		g.s.DrawText(p.value, pdf.NewRect(pill.X, pill.Y+6, pill.W, 18),
			pdf.TextStyle{Font: pdf.Font{Size: 16, Bold: true}, Color: primaryColor, Align: pdf.AlignCenter})
		g.s.DrawText(p.label, pdf.NewRect(pill.X, pill.Y+26, pill.W, 12),
			pdf.TextStyle{Font: pdf.Font{Size: 8.5}, Color: subtextColor, Align: pdf.AlignCenter})
	}

	g.s.DrawText(g.periodText(), pdf.NewRect(inner.X, inner.Y+58, inner.W, 14),
		pdf.TextStyle{Font: pdf.Font{Size: 11}, Color: subtextColor})
	g.s.DrawText(fmt.Sprintf("Pacientes sin compra: %d", sum.NotBought),
		pdf.NewRect(inner.X, inner.Y+76, inner.W, 12),
		pdf.TextStyle{Font: pdf.Font{Size: 9}, Color: subtextColor})
}

func (g *generator) periodText() string {
	if g.opts.From == nil && g.opts.To == nil {
		return "Periodo: Todo el histórico"
	}
	format := func(t *time.Time) string {
		if t == nil {
			return "…"
		}
		return t.Format("02-01-2006")
	}
	return fmt.Sprintf("Periodo: %s a %s", format(g.opts.From), format(g.opts.To))
}

func (g *generator) drawListing(inner pdf.Rect, entries []Entry) {
	const rowH = 18.0
	nameW := inner.W * 0.70
	buyW := inner.W * 0.28

	g.s.DrawText("Paciente", pdf.NewRect(inner.X, inner.Y, nameW, 12),
		pdf.TextStyle{Font: pdf.Font{Size: 9.5, Bold: true}, Color: pdf.Gray(0.15)})
	g.s.DrawText("Compra", pdf.NewRect(inner.X+nameW, inner.Y, buyW, 12),
		pdf.TextStyle{Font: pdf.Font{Size: 9.5, Bold: true}, Color: pdf.Gray(0.15), Align: pdf.AlignRight})

	if len(entries) > listMaxRows {
		entries = entries[:listMaxRows]
	}
	y := inner.Y + rowH
	for _, e := range entries {
		g.s.DrawText(entryName(e), pdf.NewRect(inner.X, y, nameW, 12), legendStyle)

		buy := "No"
		if DidBuy(e.Enc) {
			buy = "Sí"
		}
		g.s.DrawText(buy, pdf.NewRect(inner.X+nameW, y, buyW, 12), legendValStyle)

		g.s.StrokeLine(inner.X, y+rowH-4, inner.MaxX(), y+rowH-4, 0.5, pdf.Gray(0.85))
		y += rowH
	}
}

func entryName(e Entry) string {
	var parts []string
	if f := strings.TrimSpace(e.FirstName); f != "" {
		parts = append(parts, f)
	}
	if l := strings.TrimSpace(e.LastName); l != "" {
		parts = append(parts, l)
	}
	if len(parts) == 0 {
		return "Paciente"
	}
	return strings.Join(parts, " ")
}
