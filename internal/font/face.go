/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package font wraps the sfnt font engine behind the small surface the
// outline tracer needs: per-glyph segment decomposition, advance metrics
// and bitmap span extraction. Glyph coordinates are handed out in a fixed
// integer design space with 4096 units per em (26.6 values at 64 ppem),
// y axis up.
package font

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"fontdxf/internal/geom"
)

// ErrMissingGlyph reports that the font has no glyph for a character.
// Callers skip the character rather than aborting the run.
var ErrMissingGlyph = errors.New("font: no glyph for character")

// outlinePPEM scales outlines so one em is 64*64 = 4096 integer units.
const outlinePPEM = fixed.Int26_6(64 << 6)

// UnitsPerEm is the size of the design coordinate space glyphs are
// delivered in.
const UnitsPerEm = 4096

type SegmentOp uint8

const (
	SegmentOpMoveTo SegmentOp = iota
	SegmentOpLineTo
	SegmentOpQuadTo
	SegmentOpCubeTo
)

// Segment is one outline decomposition command. Args holds up to three
// points depending on the operation.
type Segment struct {
	Op   SegmentOp
	Args [3]geom.Pt
}

// Glyph is one glyph's decomposed outline plus its pen advance, both in
// design units.
type Glyph struct {
	Segments []Segment
	Advance  geom.Pt
}

// Offset returns a copy of the glyph translated horizontally. Used to
// place consecutive glyphs along a text line.
func (g Glyph) Offset(dx float64) Glyph {
	segs := make([]Segment, len(g.Segments))
	copy(segs, g.Segments)
	for i := range segs {
		for j := range segs[i].Args {
			segs[i].Args[j].X += dx
		}
	}
	return Glyph{Segments: segs, Advance: g.Advance}
}

// Decomposer receives a glyph outline as traversal callbacks, mirroring
// the four segment kinds. Points are absolute; the implementation carries
// the current point between calls.
type Decomposer interface {
	MoveTo(p geom.Pt)
	LineTo(p geom.Pt)
	QuadTo(ctrl, p geom.Pt)
	CubeTo(ctrl1, ctrl2, p geom.Pt)
}

// Decompose routes a glyph's segments into d.
func Decompose(segs []Segment, d Decomposer) {
	for _, s := range segs {
		switch s.Op {
		case SegmentOpMoveTo:
			d.MoveTo(s.Args[0])
		case SegmentOpLineTo:
			d.LineTo(s.Args[0])
		case SegmentOpQuadTo:
			d.QuadTo(s.Args[0], s.Args[1])
		case SegmentOpCubeTo:
			d.CubeTo(s.Args[0], s.Args[1], s.Args[2])
		}
	}
}

// Face is a loaded font ready for glyph lookup. It reuses one sfnt buffer
// across calls and is not safe for concurrent use; glyphs are processed
// strictly sequentially anyway.
type Face struct {
	fnt *sfnt.Font
	buf sfnt.Buffer
}

// Load reads and parses a TTF/OTF font file.
func Load(path string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses font data already in memory.
func Parse(data []byte) (*Face, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Face{fnt: fnt}, nil
}

// Name returns the font's family name, or "" when the name table is
// unusable. Used for logging only.
func (f *Face) Name() string {
	name, err := f.fnt.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Glyph looks up and decomposes the outline for r. It returns
// ErrMissingGlyph when the font has no glyph for r; any other error is an
// engine failure the caller should treat as fatal for the run.
func (f *Face) Glyph(r rune) (Glyph, error) {
	idx, err := f.fnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph index %q: %w", r, err)
	}
	if idx == 0 {
		return Glyph{}, ErrMissingGlyph
	}

	raw, err := f.fnt.LoadGlyph(&f.buf, idx, outlinePPEM, nil)
	if err != nil {
		return Glyph{}, fmt.Errorf("load glyph %q: %w", r, err)
	}
	segs := make([]Segment, len(raw))
	for i, s := range raw {
		seg := Segment{Op: SegmentOp(s.Op)}
		for j, a := range s.Args {
			// sfnt delivers y down; the drafting space is y up.
			seg.Args[j] = geom.Pt{X: float64(a.X), Y: -float64(a.Y)}
		}
		segs[i] = seg
	}

	adv, err := f.fnt.GlyphAdvance(&f.buf, idx, outlinePPEM, font.HintingNone)
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph advance %q: %w", r, err)
	}
	return Glyph{Segments: segs, Advance: geom.Pt{X: float64(adv)}}, nil
}
