// Copyright 2025 The RoomForge Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package floorplan

import (
	"math"
)

// MinTriangleArea is the smallest triangle the triangulator will emit,
// one square millimetre. Slivers below this threshold render as z-fighting
// artifacts and are dropped.
const MinTriangleArea = 1e-6

// Triangle is one output triangle, vertices in loop order.
type Triangle [3]Point

// Area returns the triangle's area.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t[0], t[1], t[2])) / 2
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Z: (t[0].Z + t[1].Z + t[2].Z) / 3,
	}
}

// triangulateStrategy attempts to triangulate a counter-clockwise polygon.
// It reports ok=false when it cannot cover the polygon, in which case the
// next strategy in the cascade is tried.
type triangulateStrategy func(pts []Point) (tris []Triangle, ok bool)

// strategies is the fallback cascade, tried in order. Strict ear clipping
// produces the best meshes; the relaxed variant tolerates slightly
// off-simple polygons; the centroid fan always succeeds so the renderer is
// never left without a mesh, at the cost of quality on concave shapes.
var strategies = []triangulateStrategy{
	earClipStrict,
	earClipRelaxed,
	centroidFan,
}

// Triangulate covers a simple polygon with triangles. The input winding does
// not matter; the polygon is normalized to counter-clockwise first. Polygons
// with fewer than three vertices produce no triangles.
func Triangulate(pts []Point) []Triangle {
	loop := normalizeLoop(pts)
	if len(loop) < 3 {
		return nil
	}
	for _, strategy := range strategies {
		if tris, ok := strategy(loop); ok {
			return tris
		}
	}
	return nil
}

// TriangulateWithHoles covers a polygon that has hole loops cut out of it.
// The outer loop is normalized counter-clockwise and each hole clockwise,
// the outer loop is triangulated as if solid, and every triangle whose
// centroid falls inside a hole is discarded. This is a simplified
// constrained triangulation: rooms are typically rectilinear, and for those
// shapes the centroid filter removes exactly the hole coverage.
func TriangulateWithHoles(outer []Point, holes [][]Point) []Triangle {
	tris := Triangulate(outer)
	if len(holes) == 0 {
		return tris
	}
	clockwiseHoles := make([][]Point, 0, len(holes))
	for _, h := range holes {
		if len(h) < 3 {
			continue
		}
		loop := make([]Point, len(h))
		copy(loop, h)
		if signedArea(loop) <= 0 { // counter-clockwise, flip to clockwise
			reverseLoop(loop)
		}
		clockwiseHoles = append(clockwiseHoles, loop)
	}
	return filterHoleTriangles(tris, clockwiseHoles)
}

// FanTriangulate covers the polygon with a naive fan from the first vertex.
// Only correct for convex polygons, but cheap; used when the caller turns
// advanced triangulation off.
func FanTriangulate(pts []Point) []Triangle {
	loop := normalizeLoop(pts)
	if len(loop) < 3 {
		return nil
	}
	var tris []Triangle
	for i := 1; i < len(loop)-1; i++ {
		t := Triangle{loop[0], loop[i], loop[i+1]}
		if t.Area() >= MinTriangleArea {
			tris = append(tris, t)
		}
	}
	return tris
}

// normalizeLoop copies the input, removes consecutive near-duplicate
// vertices (closer than VertexEpsilon, including the wrap-around pair), and
// orients the result counter-clockwise.
func normalizeLoop(pts []Point) []Point {
	loop := make([]Point, 0, len(pts))
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		if len(loop) > 0 && loop[len(loop)-1].ApproxEqual(p) {
			continue
		}
		loop = append(loop, p)
	}
	for len(loop) >= 2 && loop[0].ApproxEqual(loop[len(loop)-1]) {
		loop = loop[:len(loop)-1]
	}
	if len(loop) >= 3 && signedArea(loop) > 0 {
		reverseLoop(loop)
	}
	return loop
}

func reverseLoop(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// earClipStrict clips ears with the full validity test: the corner must be
// convex and no other polygon vertex may lie inside the candidate triangle.
func earClipStrict(pts []Point) ([]Triangle, bool) {
	return earClip(pts, false)
}

// earClipRelaxed only tests reflex vertices for containment. Convex
// vertices of a nearly simple polygon cannot block an ear except through
// numeric noise, so dropping them from the test unsticks polygons the
// strict pass rejects.
func earClipRelaxed(pts []Point) ([]Triangle, bool) {
	return earClip(pts, true)
}

// earClip repeatedly removes ear vertices from a counter-clockwise loop
// until three remain. The attempt budget of 2×n bounds the walk on input
// the validity test can never satisfy.
func earClip(pts []Point, relaxed bool) ([]Triangle, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}
	work := make([]Point, n)
	copy(work, pts)

	tris := make([]Triangle, 0, n-2)
	budget := 2 * n
	i := 0
	for len(work) > 3 && budget > 0 {
		budget--
		m := len(work)
		prev := work[(i+m-1)%m]
		cur := work[i%m]
		next := work[(i+1)%m]

		if !isEar(work, (i+m-1)%m, i%m, (i+1)%m, relaxed) {
			i = (i + 1) % m
			continue
		}

		t := Triangle{prev, cur, next}
		if t.Area() >= MinTriangleArea {
			tris = append(tris, t)
		}
		work = append(work[:i%m], work[i%m+1:]...)
		i = 0
		budget = 2 * len(work)
	}
	if len(work) != 3 {
		return nil, false
	}
	last := Triangle{work[0], work[1], work[2]}
	if last.Area() >= MinTriangleArea {
		tris = append(tris, last)
	}
	return tris, true
}

// isEar reports whether the vertex at index c of the counter-clockwise loop
// is a clippable ear. In counter-clockwise order a convex corner turns
// left, which this package's cross convention reports as a positive value.
func isEar(pts []Point, p, c, n int, relaxed bool) bool {
	a, b, d := pts[p], pts[c], pts[n]
	turn := cross(a, b, d)
	if turn <= 0 {
		// Reflex or collinear. A collinear corner spans no area; clip it
		// so degenerate duplicate-ish vertices cannot wedge the loop.
		return math.Abs(turn)/2 < MinTriangleArea
	}
	for i, v := range pts {
		if i == p || i == c || i == n {
			continue
		}
		if relaxed && cross(pts[(i+len(pts)-1)%len(pts)], v, pts[(i+1)%len(pts)]) > 0 {
			continue // relaxed mode only tests reflex vertices
		}
		if pointInTriangle(v, a, b, d) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies inside triangle abc or on its
// boundary.
func pointInTriangle(p, a, b, c Point) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// centroidFan is the last-resort strategy: fan triangles from the polygon
// centroid. It always reports success, so the cascade terminates with a
// renderable (if low quality) mesh.
func centroidFan(pts []Point) ([]Triangle, bool) {
	c := centroid(pts)
	var tris []Triangle
	n := len(pts)
	for i := range pts {
		t := Triangle{c, pts[i], pts[(i+1)%n]}
		if t.Area() >= MinTriangleArea {
			tris = append(tris, t)
		}
	}
	return tris, true
}

func filterHoleTriangles(tris []Triangle, holes [][]Point) []Triangle {
	if len(holes) == 0 {
		return tris
	}
	out := tris[:0]
	for _, t := range tris {
		c := t.Centroid()
		inHole := false
		for _, h := range holes {
			if pointInPolygon(c, h) {
				inHole = true
				break
			}
		}
		if !inHole {
			out = append(out, t)
		}
	}
	return out
}
