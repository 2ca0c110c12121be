/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"fontdxf/internal/geom"
)

const (
	previewTarget = 800.0 // longest page dimension in points
	previewMargin = 24.0
)

// Preview draws the traced record stream into a single-page PDF so the
// arc approximation can be inspected visually. Records are buffered and
// scaled to fit the page once the full extent is known; bulge arcs are
// expanded to short line segments at record time. Layer and dimension
// metadata have no visual representation and are ignored.
type Preview struct {
	w    io.Writer
	cur  geom.Pt
	recs []previewRec
}

type previewRec struct {
	move bool
	p    geom.Pt
}

func NewPreview(w io.Writer) *Preview { return &Preview{w: w} }

func (pv *Preview) Begin()          {}
func (pv *Preview) SetLayer(string) {}

func (pv *Preview) Dimensions(geom.Extents, geom.Pt) {}

func (pv *Preview) MoveTo(p geom.Pt) {
	pv.recs = append(pv.recs, previewRec{move: true, p: p})
	pv.cur = p
}

func (pv *Preview) LineTo(p geom.Pt) {
	pv.recs = append(pv.recs, previewRec{p: p})
	pv.cur = p
}

func (pv *Preview) ArcTo(p geom.Pt, bulge float64) {
	for _, q := range sampleBulge(pv.cur, p, bulge) {
		pv.recs = append(pv.recs, previewRec{p: q})
	}
	pv.cur = p
}

// End lays the buffered records onto a page scaled to their extent and
// writes the PDF.
func (pv *Preview) End() error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range pv.recs {
		minX = math.Min(minX, r.p.X)
		minY = math.Min(minY, r.p.Y)
		maxX = math.Max(maxX, r.p.X)
		maxY = math.Max(maxY, r.p.Y)
	}
	w, h := maxX-minX, maxY-minY
	if len(pv.recs) == 0 || w <= 0 && h <= 0 {
		minX, minY, w, h = 0, 0, 1, 1
	}
	scale := (previewTarget - 2*previewMargin) / math.Max(w, h)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w*scale + 2*previewMargin, Ht: h*scale + 2*previewMargin},
	})
	pdf.AddPage()
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(0, 0, 0)

	// The drafting space is y up, PDF pages are y down.
	tx := func(p geom.Pt) (float64, float64) {
		return (p.X-minX)*scale + previewMargin, (maxY-p.Y)*scale + previewMargin
	}
	open := false
	for _, r := range pv.recs {
		x, y := tx(r.p)
		if r.move {
			if open {
				pdf.DrawPath("D")
			}
			pdf.MoveTo(x, y)
			open = true
			continue
		}
		if !open {
			pdf.MoveTo(x, y)
			open = true
			continue
		}
		pdf.LineTo(x, y)
	}
	if open {
		pdf.DrawPath("D")
	}
	return pdf.Output(pv.w)
}

// sampleBulge expands the arc from p1 to p2 with the given bulge into a
// run of points ending exactly at p2.
func sampleBulge(p1, p2 geom.Pt, bulge float64) []geom.Pt {
	e := p2.Sub(p1)
	chord := e.Mag()
	if bulge == 0 || chord == 0 {
		return []geom.Pt{p2}
	}

	theta := 4 * math.Atan(bulge) // signed included angle
	mid := p1.Add(e.Scale(0.5))
	perp := geom.Pt{X: -e.Y / chord, Y: e.X / chord}
	center := mid.Add(perp.Scale(chord / 2 / math.Tan(theta/2)))
	radius := p1.Sub(center).Mag()
	a0 := math.Atan2(p1.Y-center.Y, p1.X-center.X)

	n := int(math.Ceil(math.Abs(theta) / 0.2))
	if n < 4 {
		n = 4
	}
	pts := make([]geom.Pt, 0, n)
	for i := 1; i < n; i++ {
		a := a0 + theta*float64(i)/float64(n)
		pts = append(pts, center.Add(geom.Pt{X: math.Cos(a), Y: math.Sin(a)}.Scale(radius)))
	}
	return append(pts, p2)
}
