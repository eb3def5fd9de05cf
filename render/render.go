// Package render: the depiction itself.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/molmatch/mol"
)

// Render draws t on a canvas and returns the image. Atoms whose indices
// appear in highlight are marked with filled discs under the structure.
func Render(t *mol.Topology, highlight []int, opts ...Option) (image.Image, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	if t.Len() == 0 {
		return nil, ErrEmptyTopology
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	atoms := t.Atoms()
	marked := make(map[int]struct{}, len(highlight))
	for _, idx := range highlight {
		if idx < 0 || idx >= len(atoms) {
			return nil, fmt.Errorf("render: highlight: %w: %d", mol.ErrAtomNotFound, idx)
		}
		marked[idx] = struct{}{}
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if o.FontPath != "" {
		if err := dc.LoadFontFace(o.FontPath, o.FontSize); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrFontLoad, o.FontPath, err)
		}
	}

	pts := layout(atoms, o)

	// 1) Bonds.
	dc.SetLineWidth(math.Max(1, o.FontSize/6))
	dc.SetRGB(0, 0, 0)
	for _, b := range t.Bonds() {
		p1, p2 := pts[b.A.Index], pts[b.B.Index]
		dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	}
	dc.Stroke()

	// 2) Highlight discs, under the labels.
	dc.SetColor(o.Highlight)
	for idx := range marked {
		p := pts[idx]
		dc.DrawCircle(p.X, p.Y, o.FontSize*0.75)
	}
	dc.Fill()

	// 3) Element labels. Carbons stay bare, the usual depiction shorthand.
	dc.SetRGB(0, 0, 0)
	for i, a := range atoms {
		if a.Symbol == "C" {
			continue
		}
		dc.DrawStringAnchored(a.Symbol, pts[i].X, pts[i].Y, 0.5, 0.5)
	}

	return dc.Image(), nil
}

// RenderPNG draws t and writes the encoded PNG to w.
func RenderPNG(w io.Writer, t *mol.Topology, highlight []int, opts ...Option) error {
	img, err := Render(t, highlight, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// layout maps atom coordinates onto the canvas: scaled to fit inside the
// margin, centered per axis, Y flipped (molfiles grow up, canvases down).
// Topologies whose atoms all share one point get a circular layout instead.
func layout(atoms []*mol.Atom, o Options) []gg.Point {
	xs := make([]float64, len(atoms))
	ys := make([]float64, len(atoms))
	for i, a := range atoms {
		xs[i], ys[i] = a.X, a.Y
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	if maxX-minX == 0 && maxY-minY == 0 {
		circular(xs, ys)
		minX, maxX = bounds(xs)
		minY, maxY = bounds(ys)
	}

	margin := 2 * o.FontSize
	availW := math.Max(1, float64(o.Width)-2*margin)
	availH := math.Max(1, float64(o.Height)-2*margin)
	// A straight-line molecule degenerates one axis; the other still
	// bounds the scale. A single atom degenerates both.
	scale := math.Min(availW/(maxX-minX), availH/(maxY-minY))
	if math.IsInf(scale, 1) {
		scale = 1
	}
	offX := (float64(o.Width) - (maxX-minX)*scale) / 2
	offY := (float64(o.Height) - (maxY-minY)*scale) / 2

	pts := make([]gg.Point, len(atoms))
	for i := range atoms {
		pts[i] = gg.Point{
			X: offX + (xs[i]-minX)*scale,
			Y: float64(o.Height) - offY - (ys[i]-minY)*scale,
		}
	}

	return pts
}

// circular spreads n atoms over a unit circle, first atom at the top,
// proceeding clockwise. A single atom sits at the origin.
func circular(xs, ys []float64) {
	n := len(xs)
	if n == 1 {
		return
	}
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		xs[i] = math.Cos(angle)
		ys[i] = -math.Sin(angle)
	}
}

// bounds returns the min and max of vs.
func bounds(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
