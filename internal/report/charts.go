package report

import (
	"fmt"
	"math"

	"github.com/visionwow/visionwow/internal/pdf"
)

// Corporate palette.
var (
	primaryColor = pdf.RGB(0.58, 0.17, 0.94)
	accentColor  = pdf.RGB(0.98, 0.24, 0.75)
	cardBG       = pdf.Gray(0.97)
	yesColor     = accentColor.WithAlpha(0.85)
	noColor      = pdf.Gray(0.85)
	subtextColor = pdf.Gray(0.33)
)

var (
	chartTitleStyle = pdf.TextStyle{Font: pdf.Font{Size: 12, Bold: true}, Color: pdf.Gray(0.15)}
	legendStyle     = pdf.TextStyle{Font: pdf.Font{Size: 9}, Color: pdf.Gray(0.25)}
	legendValStyle  = pdf.TextStyle{Font: pdf.Font{Size: 9, Bold: true}, Color: pdf.Gray(0.15), Align: pdf.AlignRight}
)

// drawDonut renders the purchase conversion ring with a side legend.
func drawDonut(s pdf.Surface, rect pdf.Rect, title string, yes, no int) {
	s.DrawText(title, pdf.NewRect(rect.X, rect.Y, rect.W, 16), chartTitleStyle)

	total := yes + no
	if total < 1 {
		total = 1
	}
	yesPct := float64(yes) / float64(total)

	size := math.Min(rect.W*0.40, rect.H-22)
	donut := pdf.NewRect(rect.X, rect.Y+22, size, size)
	const lineW = 14.0
	radius := size/2 - lineW/2
	cx, cy := donut.MidX(), donut.MidY()

	s.StrokeArc(cx, cy, radius, 0, 2*math.Pi, lineW, noColor)
	if yesPct > 0 {
		s.StrokeArc(cx, cy, radius, -math.Pi/2, 2*math.Pi*yesPct, lineW, yesColor)
	}

	pct := fmt.Sprintf("%d%%", int(math.Round(yesPct*100)))
	s.DrawText(pct, pdf.NewRect(donut.X, cy-12, size, 14),
		pdf.TextStyle{Font: pdf.Font{Size: 18, Bold: true}, Color: primaryColor, Align: pdf.AlignCenter})
	s.DrawText("Sí", pdf.NewRect(donut.X, cy+4, size, 12),
		pdf.TextStyle{Font: pdf.Font{Size: 10}, Color: subtextColor, Align: pdf.AlignCenter})

	legendX := donut.MaxX() + 18
	legendW := rect.MaxX() - legendX
	legendRow(s, legendX, rect.Y+28, legendW, &yesColor, "Compraron", yes)
	legendRow(s, legendX, rect.Y+48, legendW, &noColor, "No compraron", no)
	legendRow(s, legendX, rect.Y+74, legendW, nil, "Total revisados", yes+no)
}

func legendRow(s pdf.Surface, x, y, w float64, dot *pdf.Color, label string, value int) {
	if dot != nil {
		s.FillEllipse(pdf.NewRect(x, y, 10, 10), *dot)
	}
	s.DrawText(label, pdf.NewRect(x+16, y-1, w*0.70-16, 12), legendStyle)
	s.DrawText(fmt.Sprintf("%d", value), pdf.NewRect(x+w*0.70, y-1, w*0.28, 12), legendValStyle)
}

// drawStackedBars renders one horizontal yes/no bar per checklist option.
func drawStackedBars(s pdf.Surface, rect pdf.Rect, title string, rows []KeyCount, total int) {
	s.DrawText(title, pdf.NewRect(rect.X, rect.Y, rect.W, 16), chartTitleStyle)

	s.FillEllipse(pdf.NewRect(rect.X, rect.Y+18, 10, 10), yesColor)
	s.DrawText("Sí", pdf.NewRect(rect.X+14, rect.Y+17, 30, 12), legendStyle)
	s.FillEllipse(pdf.NewRect(rect.X+54, rect.Y+18, 10, 10), noColor)
	s.DrawText("No", pdf.NewRect(rect.X+68, rect.Y+17, 30, 12), legendStyle)

	safeTotal := total
	if safeTotal < 1 {
		safeTotal = 1
	}
	labelW := rect.W * 0.45
	barW := rect.W * 0.37
	numW := rect.W - labelW - barW

	const rowH = 18.0
	y := rect.Y + 36
	for _, row := range rows {
		if y+rowH > rect.MaxY() {
			break
		}
		noCount := safeTotal - row.Count
		if noCount < 0 {
			noCount = 0
		}

		s.DrawText(row.Key, pdf.NewRect(rect.X, y+2, labelW-6, 12), legendStyle)

		bar := pdf.NewRect(rect.X+labelW, y+3, barW, 12)
		s.FillRect(bar, noColor)
		yesW := barW * float64(row.Count) / float64(safeTotal)
		if yesW > 0 {
			s.FillRect(pdf.NewRect(bar.X, bar.Y, yesW, bar.H), yesColor)
		}
		s.StrokeRect(bar, 0.6, pdf.Gray(0.75))

		s.DrawText(fmt.Sprintf("%d / %d", row.Count, noCount),
			pdf.NewRect(rect.X+labelW+barW, y+2, numW, 12), legendValStyle)
		y += rowH
	}
}

// drawBarChart renders the diopter distribution as plain horizontal bars.
func drawBarChart(s pdf.Surface, rect pdf.Rect, title string, buckets []BucketCount) {
	s.DrawText(title, pdf.NewRect(rect.X, rect.Y, rect.W, 16), chartTitleStyle)

	chart := pdf.NewRect(rect.X, rect.Y+20, rect.W, rect.H-20)
	maxValue := 1
	for _, b := range buckets {
		if b.Count > maxValue {
			maxValue = b.Count
		}
	}

	const (
		barH = 14.0
		gap  = 10.0
	)
	if len(buckets) > 10 {
		buckets = buckets[:10]
	}
	y := chart.Y
	for _, b := range buckets {
		if y+barH > chart.MaxY() {
			break
		}
		s.DrawText(b.Label, pdf.NewRect(chart.X, y+1, chart.W*0.36, 12), legendStyle)

		barX := chart.X + chart.W*0.38
		barLen := (chart.W * 0.62) * float64(b.Count) / float64(maxValue)
		if barLen > 0 {
			s.FillRect(pdf.NewRect(barX, y, barLen, barH), primaryColor.WithAlpha(0.80))
		}
		s.DrawText(fmt.Sprintf("%d", b.Count), pdf.NewRect(barX+barLen+6, y+1, 40, 12),
			pdf.TextStyle{Font: pdf.Font{Size: 9, Bold: true}, Color: pdf.Gray(0.15)})
		y += barH + gap
	}
}
