/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// extentsSentinel is far outside any coordinate a font can produce, so the
// first AddPoint after Reset establishes both min and max unconditionally.
const extentsSentinel = 2000000000

// Extents is a running integer bounding box. Boxes only grow; there is no
// shrink operation.
type Extents struct {
	MinX, MaxX int64
	MinY, MaxY int64
}

// Reset arms the box so that the next AddPoint sets all four bounds.
func (e *Extents) Reset() {
	e.MinX = extentsSentinel
	e.MinY = extentsSentinel
	e.MaxX = -extentsSentinel
	e.MaxY = -extentsSentinel
}

// AddPoint grows the box to include p, truncated to integer units.
func (e *Extents) AddPoint(p Pt) {
	x, y := int64(p.X), int64(p.Y)
	if x > e.MaxX {
		e.MaxX = x
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	if x < e.MinX {
		e.MinX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
}

// Add grows the box to the union with o.
func (e *Extents) Add(o Extents) {
	if o.MaxX > e.MaxX {
		e.MaxX = o.MaxX
	}
	if o.MaxY > e.MaxY {
		e.MaxY = o.MaxY
	}
	if o.MinX < e.MinX {
		e.MinX = o.MinX
	}
	if o.MinY < e.MinY {
		e.MinY = o.MinY
	}
}

// Empty reports whether the box is still in its reset state.
func (e *Extents) Empty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}
