/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"errors"
	"fmt"

	"fontdxf/internal/font"
	"fontdxf/internal/geom"
	"fontdxf/internal/trace"
)

// Options controls one conversion run.
type Options struct {
	Trace trace.Options
	// Layer is a fixed layer name for all entities. In whole-font mode
	// each glyph gets its own layer instead.
	Layer string
	// Linescale enables bitmap tracing mode when positive: glyph
	// bitmaps rendered at this pixel size are emitted as horizontal
	// hatch lines in addition to the outline.
	Linescale int
}

// renderer carries the per-run state shared by the font and text modes:
// the tracer (reset per glyph), the running line-level extents, and the
// odd/even scanline flag of the bitmap mode.
type renderer struct {
	dev  Device
	face *font.Face
	opt  Options

	tracer *trace.Tracer
	line   geom.Extents
	odd    bool
}

func newRenderer(dev Device, face *font.Face, opt Options) *renderer {
	r := &renderer{
		dev:    dev,
		face:   face,
		opt:    opt,
		tracer: trace.New(dev, opt.Trace),
	}
	r.line.Reset()
	return r
}

// glyph traces one glyph at the given pen offset. It reports
// font.ErrMissingGlyph unchanged so callers can skip the character.
func (r *renderer) glyph(c rune, offset float64) error {
	g, err := r.face.Glyph(c)
	if err != nil {
		return err
	}
	r.tracer.Reset()

	if r.opt.Linescale > 0 {
		if err := r.hatch(c, offset); err != nil && !errors.Is(err, font.ErrMissingGlyph) {
			return err
		}
	}

	if offset != 0 {
		g = g.Offset(offset)
	}
	font.Decompose(g.Segments, r.tracer)
	r.tracer.Advance = g.Advance

	r.line.Add(r.tracer.Glyph)
	return nil
}

// hatch emits the bitmap tracing spans for one glyph as move/line pairs,
// alternating direction per scanline. The alternation is best-effort
// legacy behavior for pen plotters; it is not guaranteed to avoid
// crossings on multi-contour rows.
func (r *renderer) hatch(c rune, offset float64) error {
	lines, err := r.face.Raster(c, r.opt.Linescale)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		r.odd = !r.odd
		if r.odd {
			for i := len(ln.Spans) - 1; i >= 0; i-- {
				s := ln.Spans[i]
				r.tracer.MoveTo(geom.Pt{X: s.X1 + offset, Y: ln.Y})
				r.tracer.LineTo(geom.Pt{X: s.X0 + offset, Y: ln.Y})
			}
		} else {
			for _, s := range ln.Spans {
				r.tracer.MoveTo(geom.Pt{X: s.X0 + offset, Y: ln.Y})
				r.tracer.LineTo(geom.Pt{X: s.X1 + offset, Y: ln.Y})
			}
		}
	}
	return nil
}

// RenderFont converts the whole printable ASCII range, one layer per
// glyph, every glyph at pen offset zero, with per-glyph dimension
// records. Characters the font does not cover are skipped.
func RenderFont(dev Device, face *font.Face, opt Options) error {
	r := newRenderer(dev, face, opt)
	dev.Begin()
	for c := rune(' '); c < 127; c++ {
		dev.SetLayer(GlyphLayer(c))
		if err := r.glyph(c, 0); err != nil {
			if errors.Is(err, font.ErrMissingGlyph) {
				continue
			}
			return fmt.Errorf("render %q: %w", c, err)
		}
		dev.Dimensions(r.tracer.Glyph, r.tracer.Advance)
	}
	return dev.End()
}

// RenderText converts one line of text, advancing the pen per glyph, and
// finishes with a single line-level dimension record covering the whole
// run. Characters the font does not cover are skipped without advancing.
func RenderText(dev Device, face *font.Face, text string, opt Options) error {
	r := newRenderer(dev, face, opt)
	dev.Begin()
	dev.SetLayer(opt.Layer)
	offset := 0.0
	for _, c := range text {
		if err := r.glyph(c, offset); err != nil {
			if errors.Is(err, font.ErrMissingGlyph) {
				continue
			}
			return fmt.Errorf("render %q: %w", c, err)
		}
		offset += r.tracer.Advance.X
	}
	if !r.line.Empty() {
		dev.Dimensions(r.line, geom.Pt{X: offset})
	}
	return dev.End()
}
