/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package trace approximates glyph outline segments with straight lines and
// circular arcs suitable for a bulge-arc polyline format. Quadratic and
// cubic Bézier segments are subdivided and each subdivision is fitted with
// a biarc: two tangent-continuous circular arcs. Any ill-conditioned
// geometry degrades silently to a straight line; the pipeline never fails
// on a single bad segment.
package trace

import "fontdxf/internal/geom"

// Sink receives the ordered record stream produced by a Tracer. ArcTo
// carries the DXF-style bulge: tan(included-angle/4), negative for
// clockwise arcs.
type Sink interface {
	MoveTo(p geom.Pt)
	LineTo(p geom.Pt)
	ArcTo(p geom.Pt, bulge float64)
}

// Options are the two tunables exposed across the boundary.
type Options struct {
	// EstimateSteps is the fixed step count of the length-estimation pass.
	// It is also the sampling resolution of the bounding box for curved
	// segments, so it stays high regardless of how coarse the arc
	// approximation is.
	EstimateSteps int

	// UnitsPerBiarc is the estimated curve length, in design units,
	// covered by one biarc pair. Lower values produce more, tighter
	// fitting arcs.
	UnitsPerBiarc float64
}

const (
	DefaultEstimateSteps = 100
	DefaultUnitsPerBiarc = 200
)

func (o Options) withDefaults() Options {
	if o.EstimateSteps < 2 {
		o.EstimateSteps = DefaultEstimateSteps
	}
	if o.UnitsPerBiarc <= 0 {
		o.UnitsPerBiarc = DefaultUnitsPerBiarc
	}
	return o
}

// Tracer is the traversal driver: it receives one glyph's outline
// decomposition as MoveTo/LineTo/QuadTo/CubeTo callbacks, tracks the
// current point across calls, grows the glyph extents with every visited
// point, and streams line and arc records to the sink.
//
// A Tracer processes glyphs strictly sequentially; call Reset between
// glyphs to re-arm the extents and clear the current point.
type Tracer struct {
	sink Sink
	opts Options

	cur geom.Pt

	// Glyph is the bounding box of every point visited since Reset.
	Glyph geom.Extents
	// Advance is the pen advance of the most recently processed glyph,
	// recorded by the orchestration layer after decomposition completes.
	Advance geom.Pt
}

func New(sink Sink, opts Options) *Tracer {
	t := &Tracer{sink: sink, opts: opts.withDefaults()}
	t.Glyph.Reset()
	return t
}

// Reset prepares the tracer for the next glyph.
func (t *Tracer) Reset() {
	t.cur = geom.Pt{}
	t.Advance = geom.Pt{}
	t.Glyph.Reset()
}

// MoveTo starts a new path.
func (t *Tracer) MoveTo(p geom.Pt) {
	t.sink.MoveTo(p)
	t.cur = p
	t.Glyph.AddPoint(p)
}

// LineTo emits a straight segment from the current point.
func (t *Tracer) LineTo(p geom.Pt) {
	t.sink.LineTo(p)
	t.cur = p
	t.Glyph.AddPoint(p)
}

// QuadTo approximates a quadratic Bézier from the current point with arcs.
func (t *Tracer) QuadTo(ctrl, to geom.Pt) {
	p0, p1, p2 := t.cur, ctrl, to

	// Estimation pass: fixed-resolution walk for the arc length and the
	// bounding box.
	length := 0.0
	prev := p0
	for i := 1; i <= t.opts.EstimateSteps; i++ {
		tf := float64(i) / float64(t.opts.EstimateSteps)
		t1 := 1 - tf
		p := geom.Add3(p0.Scale(t1*t1), p1.Scale(2*tf*t1), p2.Scale(tf*tf))
		length += p.Sub(prev).Mag()
		prev = p
		t.Glyph.AddPoint(p)
	}

	// Adaptive pass: one biarc pair per UnitsPerBiarc of estimated length,
	// at least two. Tangent weights are the control-polygon edges; the
	// dropped degree factor only scales magnitude and tangents are
	// normalized downstream.
	q0 := p1.Sub(p0)
	q1 := p2.Sub(p1)
	steps := adaptiveSteps(length, t.opts.UnitsPerBiarc)
	ps, ts := p0, q0
	for i := 1; i <= steps; i++ {
		tf := float64(i) / float64(steps)
		t1 := 1 - tf
		p := geom.Add3(p0.Scale(t1*t1), p1.Scale(2*tf*t1), p2.Scale(tf*tf))
		tan := q0.Scale(t1).Add(q1.Scale(tf))
		t.biarc(ps, ts, p, tan, 1.0)
		ps, ts = p, tan
	}

	t.cur = to
	t.Glyph.AddPoint(to)
}

// CubeTo approximates a cubic Bézier from the current point with arcs.
func (t *Tracer) CubeTo(ctrl1, ctrl2, to geom.Pt) {
	p0, p1, p2, p3 := t.cur, ctrl1, ctrl2, to

	length := 0.0
	prev := p0
	for i := 1; i <= t.opts.EstimateSteps; i++ {
		tf := float64(i) / float64(t.opts.EstimateSteps)
		t1 := 1 - tf
		p := geom.Add4(
			p0.Scale(t1*t1*t1), p1.Scale(3*tf*t1*t1),
			p2.Scale(3*tf*tf*t1), p3.Scale(tf*tf*tf))
		length += p.Sub(prev).Mag()
		prev = p
		t.Glyph.AddPoint(p)
	}

	q0 := p1.Sub(p0)
	q1 := p2.Sub(p1)
	q2 := p3.Sub(p2)
	steps := adaptiveSteps(length, t.opts.UnitsPerBiarc)
	ps, ts := p0, q0
	for i := 1; i <= steps; i++ {
		tf := float64(i) / float64(steps)
		t1 := 1 - tf
		p := geom.Add4(
			p0.Scale(t1*t1*t1), p1.Scale(3*tf*t1*t1),
			p2.Scale(3*tf*tf*t1), p3.Scale(tf*tf*tf))
		tan := geom.Add3(q0.Scale(t1*t1), q1.Scale(2*tf*t1), q2.Scale(tf*tf))
		t.biarc(ps, ts, p, tan, 1.0)
		ps, ts = p, tan
	}

	t.cur = to
	t.Glyph.AddPoint(to)
}

func adaptiveSteps(length, unitsPerBiarc float64) int {
	steps := int(length / unitsPerBiarc)
	if steps < 2 {
		steps = 2
	}
	return steps
}
