/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package font

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// spanInset trims each span end by the pen radius, in design units.
const spanInset = 8

// Span is one horizontal run of set pixels, in design units.
type Span struct {
	X0, X1 float64
}

// Scanline is all spans of one bitmap row, top to bottom, with the row's
// y coordinate in design units.
type Scanline struct {
	Y     float64
	Spans []Span
}

// Raster renders the glyph for r at linescale pixels per em and extracts
// the per-scanline coverage spans, mapped back into design units. Spans
// narrower than twice the pen inset collapse and are dropped.
func (f *Face) Raster(r rune, linescale int) ([]Scanline, error) {
	idx, err := f.fnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph index %q: %w", r, err)
	}
	if idx == 0 {
		return nil, ErrMissingGlyph
	}

	face, err := opentype.NewFace(f.fnt, &opentype.FaceOptions{
		Size:    float64(linescale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster face: %w", err)
	}
	defer face.Close()

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, ErrMissingGlyph
	}

	scale := float64(UnitsPerEm) / float64(linescale)
	var lines []Scanline
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		// Half a scanline down so the polyline runs through pixel centers.
		line := Scanline{Y: -float64(y)*scale - scale/2}
		on := false
		start := 0.0
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			bit := a >= 0x8000
			if bit && !on {
				start = float64(x)*scale + spanInset
			}
			if !bit && on {
				if end := float64(x)*scale - spanInset; end > start {
					line.Spans = append(line.Spans, Span{X0: start, X1: end})
				}
			}
			on = bit
		}
		if on {
			if end := float64(dr.Max.X)*scale - spanInset; end > start {
				line.Spans = append(line.Spans, Span{X0: start, X1: end})
			}
		}
		if len(line.Spans) > 0 {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
