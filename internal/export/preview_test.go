/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"math"
	"testing"

	"fontdxf/internal/geom"
)

func TestPreviewWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(NewPreview(&buf), testFace(t), "Io", Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %.16q", buf.Bytes())
	}
}

func TestPreviewEmptyStream(t *testing.T) {
	var buf bytes.Buffer
	pv := NewPreview(&buf)
	pv.Begin()
	if err := pv.End(); err != nil {
		t.Fatalf("empty preview: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("empty preview should still be a valid PDF")
	}
}

func TestSampleBulgeQuarterCircle(t *testing.T) {
	// Counter-clockwise quarter of the unit-100 circle.
	p1 := geom.Pt{X: 100}
	p2 := geom.Pt{Y: 100}
	pts := sampleBulge(p1, p2, math.Tan(math.Pi/8))
	if len(pts) < 4 {
		t.Fatalf("expected several samples, got %d", len(pts))
	}
	if pts[len(pts)-1] != p2 {
		t.Fatalf("samples must end exactly at the arc end: %+v", pts[len(pts)-1])
	}
	for _, p := range pts {
		if r := p.Mag(); math.Abs(r-100) > 1e-6 {
			t.Fatalf("sample %+v off the circle: radius %g", p, r)
		}
	}
}

func TestSampleBulgeZeroIsLine(t *testing.T) {
	pts := sampleBulge(geom.Pt{}, geom.Pt{X: 10}, 0)
	if len(pts) != 1 || pts[0] != (geom.Pt{X: 10}) {
		t.Fatalf("zero bulge must sample to the endpoint only: %+v", pts)
	}
}
