/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package trace

import (
	"math"

	"fontdxf/internal/geom"
)

// arcDenEps bounds the arc denominator below which the tangent is treated
// as parallel to the chord and the segment degrades to a line.
const arcDenEps = 1e-10

// arcTo emits the unique circular arc from p1 to p2 whose tangent at p1 is
// dir, as a bulge-arc record. If the tangent is numerically parallel to the
// chord there is no stable arc and a line record is emitted instead.
func (t *Tracer) arcTo(p1, p2, dir geom.Pt) {
	d := dir.Unit()
	p := p2.Sub(p1)
	den := 2 * (p.Y*d.X - p.X*d.Y)
	if math.Abs(den) < arcDenEps {
		t.sink.LineTo(p2)
		return
	}

	r := -p.Dot(p) / den
	c := p1.Add(geom.Pt{X: d.Y * r, Y: -d.X * r})
	st := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	en := math.Atan2(p2.Y-c.Y, p2.X-c.X)

	// Wind the end angle onto the correct side of the start angle so the
	// sweep direction agrees with the sign of the radius.
	if r < 0 {
		for en <= st {
			en += 2 * math.Pi
		}
	} else {
		for en >= st {
			en -= 2 * math.Pi
		}
	}

	bulge := math.Tan(math.Abs(en-st) / 4)
	if r > 0 {
		bulge = -bulge
	}
	t.sink.ArcTo(p2, bulge)
}

// biarc approximates the curve from p0 (tangent ts) to p4 (tangent te) with
// two tangent-continuous circular arcs. ratio splits the arc length between
// the two arcs; 1.0 is symmetric. When no admissible solution exists the
// whole span degrades to a single line record.
func (t *Tracer) biarc(p0, ts, p4, te geom.Pt, ratio float64) {
	ts = ts.Unit()
	te = te.Unit()

	v := p0.Sub(p4)

	// Solve a·β² + b·β + c = 0 for the tangent length β.
	c := v.Dot(v)
	b := 2 * v.Dot(ts.Scale(ratio).Add(te))
	a := 2 * ratio * (ts.Dot(te) - 1)

	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		t.sink.LineTo(p4)
		return
	}

	disq := math.Sqrt(disc)
	beta := math.Max((-b-disq)/2/a, (-b+disq)/2/a)
	if beta <= 0 {
		t.sink.LineTo(p4)
		return
	}

	alpha := beta * ratio
	ab := alpha + beta
	p1 := p0.Add(ts.Scale(alpha))
	p3 := p4.Add(te.Scale(-beta))
	p2 := p1.Scale(beta / ab).Add(p3.Scale(alpha / ab))
	tm := p3.Sub(p2)

	t.arcTo(p0, p2, ts)
	t.arcTo(p2, p4, tm)
}
