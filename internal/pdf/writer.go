package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image"
	"math"
	"sort"
)

// Writer is a Surface that encodes its drawing commands as a PDF file.
// Pages use the two built-in Helvetica faces with WinAnsi encoding, content
// streams are Flate-compressed, and images are embedded as 8-bit RGB
// XObjects. Output is byte-for-byte deterministic for identical command
// sequences.
type Writer struct {
	pages  []*page
	images []*imageObj
	alphas map[float64]int // alpha value -> gstate index
	cur    *page
}

type page struct {
	w, h    float64
	content bytes.Buffer
	images  map[int]bool // image indices referenced by this page
	alphas  map[int]bool // gstate indices referenced by this page
}

type imageObj struct {
	w, h int
	data []byte // zlib-compressed raw RGB
}

func NewWriter() *Writer {
	return &Writer{alphas: make(map[float64]int)}
}

func (w *Writer) BeginPage(width, height float64) {
	p := &page{w: width, h: height, images: make(map[int]bool), alphas: make(map[int]bool)}
	w.pages = append(w.pages, p)
	w.cur = p
}

// flipY converts from top-left to PDF bottom-left coordinates.
func (w *Writer) flipY(y float64) float64 { return w.cur.h - y }

func (w *Writer) setAlpha(a float64) {
	if a >= 1 {
		return
	}
	idx, ok := w.alphas[a]
	if !ok {
		idx = len(w.alphas)
		w.alphas[a] = idx
	}
	w.cur.alphas[idx] = true
	fmt.Fprintf(&w.cur.content, "/GS%d gs\n", idx)
}

func (w *Writer) fillColor(c Color)   { fmt.Fprintf(&w.cur.content, "%s %s %s rg\n", f(c.R), f(c.G), f(c.B)) }
func (w *Writer) strokeColor(c Color) { fmt.Fprintf(&w.cur.content, "%s %s %s RG\n", f(c.R), f(c.G), f(c.B)) }

// f formats a coordinate with enough precision for print geometry while
// keeping streams compact and stable.
func f(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}

func (w *Writer) DrawText(text string, rect Rect, style TextStyle) {
	if w.cur == nil || text == "" {
		return
	}
	x := rect.X
	switch style.Align {
	case AlignCenter:
		x = rect.X + (rect.W-MeasureText(text, style.Font))/2
	case AlignRight:
		x = rect.MaxX() - MeasureText(text, style.Font)
	}
	// Baseline sits so the cap height is roughly centered in the rect.
	baseline := rect.MidY() + style.Font.Size*0.35

	font := "F1"
	if style.Font.Bold {
		font = "F2"
	}

	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(style.Color.A)
	w.fillColor(style.Color)
	fmt.Fprintf(b, "BT /%s %s Tf %s %s Td (", font, f(style.Font.Size), f(x), f(w.flipY(baseline)))
	b.Write(escapePDFString(encodeWinAnsi(text)))
	b.WriteString(") Tj ET\nQ\n")
}

func (w *Writer) StrokeLine(x1, y1, x2, y2, width float64, color Color) {
	if w.cur == nil {
		return
	}
	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.strokeColor(color)
	fmt.Fprintf(b, "%s w %s %s m %s %s l S\nQ\n", f(width), f(x1), f(w.flipY(y1)), f(x2), f(w.flipY(y2)))
}

func (w *Writer) FillRect(rect Rect, color Color) {
	if w.cur == nil {
		return
	}
	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.fillColor(color)
	fmt.Fprintf(b, "%s %s %s %s re f\nQ\n", f(rect.X), f(w.flipY(rect.MaxY())), f(rect.W), f(rect.H))
}

func (w *Writer) StrokeRect(rect Rect, width float64, color Color) {
	if w.cur == nil {
		return
	}
	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.strokeColor(color)
	fmt.Fprintf(b, "%s w %s %s %s %s re S\nQ\n", f(width), f(rect.X), f(w.flipY(rect.MaxY())), f(rect.W), f(rect.H))
}

// kappa is the cubic bezier approximation constant for a quarter circle.
const kappa = 0.5522847498

func (w *Writer) FillRoundedRect(rect Rect, radius float64, color Color) {
	if w.cur == nil {
		return
	}
	if radius <= 0 {
		w.FillRect(rect, color)
		return
	}
	if max := math.Min(rect.W, rect.H) / 2; radius > max {
		radius = max
	}

	x, y := rect.X, w.flipY(rect.MaxY())
	xr, yr := rect.MaxX(), w.flipY(rect.Y)
	r, k := radius, radius*kappa

	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.fillColor(color)
	fmt.Fprintf(b, "%s %s m\n", f(x+r), f(y))
	fmt.Fprintf(b, "%s %s l %s %s %s %s %s %s c\n", f(xr-r), f(y), f(xr-r+k), f(y), f(xr), f(y+r-k), f(xr), f(y+r))
	fmt.Fprintf(b, "%s %s l %s %s %s %s %s %s c\n", f(xr), f(yr-r), f(xr), f(yr-r+k), f(xr-r+k), f(yr), f(xr-r), f(yr))
	fmt.Fprintf(b, "%s %s l %s %s %s %s %s %s c\n", f(x+r), f(yr), f(x+r-k), f(yr), f(x), f(yr-r+k), f(x), f(yr-r))
	fmt.Fprintf(b, "%s %s l %s %s %s %s %s %s c\n", f(x), f(y+r), f(x), f(y+r-k), f(x+r-k), f(y), f(x+r), f(y))
	b.WriteString("f\nQ\n")
}

func (w *Writer) FillEllipse(rect Rect, color Color) {
	if w.cur == nil {
		return
	}
	cx, cy := rect.MidX(), w.flipY(rect.MidY())
	rx, ry := rect.W/2, rect.H/2
	kx, ky := rx*kappa, ry*kappa

	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.fillColor(color)
	fmt.Fprintf(b, "%s %s m\n", f(cx+rx), f(cy))
	fmt.Fprintf(b, "%s %s %s %s %s %s c\n", f(cx+rx), f(cy+ky), f(cx+kx), f(cy+ry), f(cx), f(cy+ry))
	fmt.Fprintf(b, "%s %s %s %s %s %s c\n", f(cx-kx), f(cy+ry), f(cx-rx), f(cy+ky), f(cx-rx), f(cy))
	fmt.Fprintf(b, "%s %s %s %s %s %s c\n", f(cx-rx), f(cy-ky), f(cx-kx), f(cy-ry), f(cx), f(cy-ry))
	fmt.Fprintf(b, "%s %s %s %s %s %s c\n", f(cx+kx), f(cy-ry), f(cx+rx), f(cy-ky), f(cx+rx), f(cy))
	b.WriteString("f\nQ\n")
}

func (w *Writer) StrokeArc(cx, cy, radius, start, sweep, width float64, color Color) {
	if w.cur == nil || sweep == 0 {
		return
	}
	// In page coordinates y grows down, so a positive (clockwise) sweep is
	// counter-clockwise in PDF space after the flip.
	pcy := w.flipY(cy)
	a0 := -start
	da := -sweep

	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.strokeColor(color)
	fmt.Fprintf(b, "%s w 1 J\n", f(width))

	segs := int(math.Ceil(math.Abs(da) / (math.Pi / 2)))
	if segs < 1 {
		segs = 1
	}
	step := da / float64(segs)

	x0 := cx + radius*math.Cos(a0)
	y0 := pcy + radius*math.Sin(a0)
	fmt.Fprintf(b, "%s %s m\n", f(x0), f(y0))
	for i := 0; i < segs; i++ {
		s := a0 + float64(i)*step
		e := s + step
		k := 4.0 / 3.0 * math.Tan((e-s)/4) * radius
		c1x := cx + radius*math.Cos(s) - k*math.Sin(s)
		c1y := pcy + radius*math.Sin(s) + k*math.Cos(s)
		c2x := cx + radius*math.Cos(e) + k*math.Sin(e)
		c2y := pcy + radius*math.Sin(e) - k*math.Cos(e)
		ex := cx + radius*math.Cos(e)
		ey := pcy + radius*math.Sin(e)
		fmt.Fprintf(b, "%s %s %s %s %s %s c\n", f(c1x), f(c1y), f(c2x), f(c2y), f(ex), f(ey))
	}
	b.WriteString("S\nQ\n")
}

func (w *Writer) StrokePolyline(pts []Point, width float64, color Color) {
	if w.cur == nil || len(pts) < 2 {
		return
	}
	b := &w.cur.content
	b.WriteString("q\n")
	w.setAlpha(color.A)
	w.strokeColor(color)
	fmt.Fprintf(b, "%s w 1 J 1 j\n", f(width))
	fmt.Fprintf(b, "%s %s m\n", f(pts[0].X), f(w.flipY(pts[0].Y)))
	for _, p := range pts[1:] {
		fmt.Fprintf(b, "%s %s l\n", f(p.X), f(w.flipY(p.Y)))
	}
	b.WriteString("S\nQ\n")
}

func (w *Writer) DrawImage(img image.Image, rect Rect) {
	if w.cur == nil || img == nil {
		return
	}
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()
	if iw == 0 || ih == 0 {
		return
	}

	idx := w.addImage(img)
	w.cur.images[idx] = true

	// Aspect-fit inside rect, centered.
	scale := math.Min(rect.W/float64(iw), rect.H/float64(ih))
	dw, dh := float64(iw)*scale, float64(ih)*scale
	dx := rect.X + (rect.W-dw)/2
	dy := rect.Y + (rect.H-dh)/2

	fmt.Fprintf(&w.cur.content, "q\n%s 0 0 %s %s %s cm /Im%d Do\nQ\n",
		f(dw), f(dh), f(dx), f(w.flipY(dy+dh)), idx)
}

func (w *Writer) addImage(img image.Image) int {
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()

	raw := make([]byte, 0, iw*ih*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			raw = append(raw, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(raw)
	zw.Close()

	w.images = append(w.images, &imageObj{w: iw, h: ih, data: buf.Bytes()})
	return len(w.images) - 1
}

// Bytes assembles the final PDF document.
func (w *Writer) Bytes() []byte {
	// Object numbering: 1 catalog, 2 pages root, 3 F1, 4 F2, then one
	// gstate per alpha, one XObject per image, then per page a page
	// object and a content object.
	gsBase := 5
	imgBase := gsBase + len(w.alphas)
	pageBase := imgBase + len(w.images)
	total := pageBase + 2*len(w.pages) - 1

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, total+1)
	obj := func(n int, body string) {
		offsets[n] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", n, body)
	}

	var kids bytes.Buffer
	for i := range w.pages {
		fmt.Fprintf(&kids, "%d 0 R ", pageBase+2*i)
	}
	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", bytes.TrimSpace(kids.Bytes()), len(w.pages)))
	obj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	obj(4, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")

	// ExtGStates sorted by index for stable output.
	type gsEntry struct {
		idx   int
		alpha float64
	}
	gs := make([]gsEntry, 0, len(w.alphas))
	for a, idx := range w.alphas {
		gs = append(gs, gsEntry{idx: idx, alpha: a})
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i].idx < gs[j].idx })
	for _, g := range gs {
		obj(gsBase+g.idx, fmt.Sprintf("<< /Type /ExtGState /CA %s /ca %s >>", f(g.alpha), f(g.alpha)))
	}

	for i, img := range w.images {
		offsets[imgBase+i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n<< /Type /XObject /Subtype /Image /Width %d /Height %d "+
			"/ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /FlateDecode /Length %d >>\nstream\n",
			imgBase+i, img.w, img.h, len(img.data))
		out.Write(img.data)
		out.WriteString("\nendstream\nendobj\n")
	}

	for i, p := range w.pages {
		pageObj := pageBase + 2*i
		contentObj := pageObj + 1

		var res bytes.Buffer
		res.WriteString("/Font << /F1 3 0 R /F2 4 0 R >>")
		if len(p.alphas) > 0 {
			res.WriteString(" /ExtGState <<")
			idxs := sortedKeys(p.alphas)
			for _, idx := range idxs {
				fmt.Fprintf(&res, " /GS%d %d 0 R", idx, gsBase+idx)
			}
			res.WriteString(" >>")
		}
		if len(p.images) > 0 {
			res.WriteString(" /XObject <<")
			idxs := sortedKeys(p.images)
			for _, idx := range idxs {
				fmt.Fprintf(&res, " /Im%d %d 0 R", idx, imgBase+idx)
			}
			res.WriteString(" >>")
		}

		obj(pageObj, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Resources << %s >> /Contents %d 0 R >>",
			f(p.w), f(p.h), res.String(), contentObj))

		var comp bytes.Buffer
		zw := zlib.NewWriter(&comp)
		zw.Write(p.content.Bytes())
		zw.Close()

		offsets[contentObj] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", contentObj, comp.Len())
		out.Write(comp.Bytes())
		out.WriteString("\nendstream\nendobj\n")
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", total+1)
	for n := 1; n <= total; n++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xref)

	return out.Bytes()
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
