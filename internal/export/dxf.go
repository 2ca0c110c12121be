/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders traced glyph outlines to output devices: a
// minimal DXF ENTITIES stream (the primary format) and a PDF preview for
// visual inspection of the arc approximation.
package export

import (
	"fmt"
	"io"

	"fontdxf/internal/geom"
)

// Device is an output backend for one conversion run. MoveTo/LineTo/ArcTo
// receive the traced record stream; SetLayer names the layer for
// subsequent entities; Dimensions emits one glyph's (or line's) metrics
// metadata. End flushes and reports the first error encountered.
type Device interface {
	Begin()
	SetLayer(name string)
	MoveTo(p geom.Pt)
	LineTo(p geom.Pt)
	ArcTo(p geom.Pt, bulge float64)
	Dimensions(box geom.Extents, advance geom.Pt)
	End() error
}

// DXF writes the OpenSCAD-compatible minimal DXF dialect of the output:
// bare LWPOLYLINE entities with bulge-arc vertices and DIMENSION records
// carrying minx/maxx/miny/maxy/advx/advy per glyph. Write errors are
// sticky; the first one is reported by End.
type DXF struct {
	w     io.Writer
	layer string
	err   error
}

func NewDXF(w io.Writer) *DXF { return &DXF{w: w} }

func (d *DXF) wf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *DXF) Begin() {
	d.wf("  0\nSECTION\n  2\nENTITIES\n")
}

// SetLayer sets the layer name stamped onto subsequent entities. An empty
// name suppresses the layer record.
func (d *DXF) SetLayer(name string) { d.layer = name }

func (d *DXF) emitLayer() {
	if d.layer != "" {
		d.wf("  8\n%s\n", d.layer)
	}
}

// MoveTo starts a new polyline entity at p.
func (d *DXF) MoveTo(p geom.Pt) {
	d.wf("  0\nLWPOLYLINE\n")
	d.emitLayer()
	d.wf(" 10\n%.4f\n 20\n%.4f\n", p.X, p.Y)
}

// LineTo appends a straight vertex.
func (d *DXF) LineTo(p geom.Pt) {
	d.wf(" 10\n%.4f\n 20\n%.4f\n", p.X, p.Y)
}

// ArcTo appends a vertex whose preceding segment bulges into a circular
// arc. The bulge is tan(included-angle/4), negative for clockwise.
func (d *DXF) ArcTo(p geom.Pt, bulge float64) {
	d.wf(" 42\n%.4f\n 10\n%.4f\n 20\n%.4f\n", bulge, p.X, p.Y)
}

// Dimensions emits the six metric records for the current layer.
func (d *DXF) Dimensions(box geom.Extents, advance geom.Pt) {
	d.dim("minx", 70, 13, box.MinX)
	d.dim("maxx", 70, 13, box.MaxX)
	d.dim("miny", 6, 23, box.MinY)
	d.dim("maxy", 6, 23, box.MaxY)
	d.dim("advx", 70, 13, int64(advance.X))
	d.dim("advy", 6, 23, int64(advance.Y))
}

func (d *DXF) dim(name string, flag, code int, value int64) {
	d.wf("  0\nDIMENSION\n")
	d.emitLayer()
	d.wf(" 70\n%d\n  1\n%s\n %d\n%d\n", flag, name, code, value)
}

func (d *DXF) End() error {
	d.wf("  0\nENDSEC\n  0\nEOF\n")
	return d.err
}

// GlyphLayer names the per-glyph layer in whole-font mode: the character
// itself when printable ASCII, otherwise its code point in decimal.
func GlyphLayer(r rune) string {
	if r >= ' ' && r <= '~' {
		return string(r)
	}
	return fmt.Sprintf("_%d", r)
}
