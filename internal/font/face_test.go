/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"fontdxf/internal/geom"
)

func testFace(t *testing.T) *Face {
	t.Helper()
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse test font: %v", err)
	}
	return f
}

func TestParseAndName(t *testing.T) {
	f := testFace(t)
	if f.Name() == "" {
		t.Fatalf("expected a family name")
	}
}

func TestGlyphOutline(t *testing.T) {
	f := testFace(t)
	g, err := f.Glyph('A')
	if err != nil {
		t.Fatalf("glyph: %v", err)
	}
	if len(g.Segments) == 0 {
		t.Fatalf("expected outline segments")
	}
	if g.Segments[0].Op != SegmentOpMoveTo {
		t.Fatalf("outline must start with a move, got op %d", g.Segments[0].Op)
	}
	if g.Advance.X <= 0 || g.Advance.Y != 0 {
		t.Fatalf("unexpected advance: %+v", g.Advance)
	}

	// The drafting space is y up: a capital letter reaches above the
	// baseline with positive y.
	maxY := 0.0
	for _, s := range g.Segments {
		for _, a := range s.Args {
			if a.Y > maxY {
				maxY = a.Y
			}
		}
	}
	if maxY <= 0 {
		t.Fatalf("cap height should be positive in y-up space, got %g", maxY)
	}
	if maxY > UnitsPerEm {
		t.Fatalf("cap height exceeds the em: %g", maxY)
	}
}

func TestGlyphMissing(t *testing.T) {
	f := testFace(t)
	_, err := f.Glyph('\ue000') // private use, unmapped
	if !errors.Is(err, ErrMissingGlyph) {
		t.Fatalf("expected ErrMissingGlyph, got %v", err)
	}
}

type countingDecomposer struct {
	moves, lines, quads, cubes int
	last                       geom.Pt
}

func (c *countingDecomposer) MoveTo(p geom.Pt) { c.moves++; c.last = p }
func (c *countingDecomposer) LineTo(p geom.Pt) { c.lines++; c.last = p }
func (c *countingDecomposer) QuadTo(_, p geom.Pt) {
	c.quads++
	c.last = p
}
func (c *countingDecomposer) CubeTo(_, _, p geom.Pt) {
	c.cubes++
	c.last = p
}

func TestDecomposeRoutesAllSegments(t *testing.T) {
	f := testFace(t)
	g, err := f.Glyph('o') // TrueType outline: moves, lines and quads
	if err != nil {
		t.Fatalf("glyph: %v", err)
	}
	var c countingDecomposer
	Decompose(g.Segments, &c)
	if c.moves == 0 {
		t.Fatalf("expected at least one contour")
	}
	if c.moves+c.lines+c.quads+c.cubes != len(g.Segments) {
		t.Fatalf("decompose dropped segments: %+v vs %d", c, len(g.Segments))
	}
}

func TestGlyphOffset(t *testing.T) {
	f := testFace(t)
	g, err := f.Glyph('A')
	if err != nil {
		t.Fatalf("glyph: %v", err)
	}
	shifted := g.Offset(1000)
	for i := range g.Segments {
		for j := range g.Segments[i].Args {
			want := g.Segments[i].Args[j].X + 1000
			if shifted.Segments[i].Args[j].X != want {
				t.Fatalf("segment %d arg %d not shifted", i, j)
			}
			if shifted.Segments[i].Args[j].Y != g.Segments[i].Args[j].Y {
				t.Fatalf("offset must not touch y")
			}
		}
	}
	// The original is untouched.
	if g.Segments[0].Args[0].X == shifted.Segments[0].Args[0].X {
		t.Fatalf("offset mutated the source glyph")
	}
}

func TestRasterSpans(t *testing.T) {
	f := testFace(t)
	lines, err := f.Raster('I', 64)
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	if len(lines) == 0 {
		t.Fatalf("expected scanlines for a solid glyph")
	}
	for _, ln := range lines {
		if len(ln.Spans) == 0 {
			t.Fatalf("empty scanline should have been dropped")
		}
		for _, s := range ln.Spans {
			if s.X1 <= s.X0 {
				t.Fatalf("degenerate span survived: %+v", s)
			}
		}
	}
	// Scanlines come top to bottom in a y-up space.
	for i := 1; i < len(lines); i++ {
		if lines[i].Y >= lines[i-1].Y {
			t.Fatalf("scanlines out of order: %g then %g", lines[i-1].Y, lines[i].Y)
		}
	}
}

func TestRasterMissingGlyph(t *testing.T) {
	f := testFace(t)
	if _, err := f.Raster('\ue000', 64); !errors.Is(err, ErrMissingGlyph) {
		t.Fatalf("expected ErrMissingGlyph, got %v", err)
	}
}
