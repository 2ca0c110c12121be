/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom provides the 2D vector arithmetic and bounding-box
// accumulation used by the outline tracer. Coordinates are font design
// units (26.6 values taken as plain integers by the font layer).
package geom

import "math"

// Pt is a 2D point or direction vector.
type Pt struct{ X, Y float64 }

func (p Pt) Add(o Pt) Pt { return Pt{p.X + o.X, p.Y + o.Y} }

func (p Pt) Sub(o Pt) Pt { return Pt{p.X - o.X, p.Y - o.Y} }

// Scale multiplies both components by s.
func (p Pt) Scale(s float64) Pt { return Pt{p.X * s, p.Y * s} }

func (p Pt) Dot(o Pt) float64 { return p.X*o.X + p.Y*o.Y }

// Mag returns the Euclidean norm.
func (p Pt) Mag() float64 { return math.Sqrt(p.Dot(p)) }

// Unit returns the normalized vector. A zero vector normalizes to (0,0)
// rather than failing; callers treat that as "no defined direction".
func (p Pt) Unit() Pt {
	m := p.Mag()
	if m == 0 {
		return Pt{}
	}
	return Pt{p.X / m, p.Y / m}
}

// Add3 sums three points component-wise. Used for weighted Bézier
// evaluation where the terms are pre-scaled basis contributions.
func Add3(a, b, c Pt) Pt {
	return Pt{a.X + b.X + c.X, a.Y + b.Y + c.Y}
}

// Add4 sums four points component-wise.
func Add4(a, b, c, d Pt) Pt {
	return Pt{a.X + b.X + c.X + d.X, a.Y + b.Y + c.Y + d.Y}
}
