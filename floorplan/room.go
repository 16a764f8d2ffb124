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
	"slices"
)

// Room is a closed polygon loop traced from connected wall segments.
// Vertices are ordered along the boundary; the loop is implicitly closed
// (the last vertex connects back to the first). Rooms are derived values,
// recomputed from the wall list on every geometry change, never stored.
type Room struct {
	// Vertices is the ordered boundary loop.
	Vertices []Point

	// WallIDs holds, for each vertex, the ID of the wall that was traversed
	// starting at that vertex. Lets callers map boundary edits back to walls.
	WallIDs []string

	// Closed reports whether the trace returned to its starting point.
	Closed bool

	// Valid reports whether the trace produced a usable polygon: at least
	// three vertices, a closed loop, and no self-intersections.
	Valid bool
}

// Rect is an axis-aligned bounding rectangle on the horizontal plane.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// Width returns the X extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Depth returns the Z extent of the rectangle.
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// SignedArea returns the shoelace sum of the loop. The sign encodes the
// winding direction: non-positive means counter-clockwise under the
// convention used throughout this package.
func (r Room) SignedArea() float64 {
	return signedArea(r.Vertices)
}

// Area returns the enclosed area of the loop.
func (r Room) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Perimeter returns the total boundary length of the loop.
func (r Room) Perimeter() float64 {
	return perimeter(r.Vertices)
}

// Centroid returns the vertex centroid of the loop. The zero Point is
// returned for an empty room.
func (r Room) Centroid() Point {
	return centroid(r.Vertices)
}

// IsCounterClockwise reports whether the loop is wound counter-clockwise.
func (r Room) IsCounterClockwise() bool {
	return r.SignedArea() <= 0
}

// EnsureCounterClockwise returns a room whose loop is wound
// counter-clockwise, reversing the vertex order if needed. Applying it to
// an already counter-clockwise room returns the room unchanged, so the
// operation is idempotent.
func (r Room) EnsureCounterClockwise() Room {
	if r.IsCounterClockwise() {
		return r
	}
	return r.reversed()
}

// EnsureClockwise is the opposite normalization, used for hole loops.
func (r Room) EnsureClockwise() Room {
	if !r.IsCounterClockwise() {
		return r
	}
	return r.reversed()
}

func (r Room) reversed() Room {
	out := Room{
		Vertices: make([]Point, len(r.Vertices)),
		Closed:   r.Closed,
		Valid:    r.Valid,
	}
	copy(out.Vertices, r.Vertices)
	slices.Reverse(out.Vertices)
	// WallIDs[i] names the wall of the edge leaving Vertices[i]. The wall
	// spanning Vertices[i]..Vertices[i+1] leaves the reversed loop at index
	// n-2-i, so a plain lockstep reversal would shift every ID one edge off.
	if n := len(r.WallIDs); n > 0 {
		out.WallIDs = make([]string, n)
		for i, id := range r.WallIDs {
			out.WallIDs[(2*n-2-i)%n] = id
		}
	}
	return out
}

// BoundingBox returns the axis-aligned bounding rectangle of the loop.
func (r Room) BoundingBox() Rect {
	if len(r.Vertices) == 0 {
		return Rect{}
	}
	box := Rect{
		MinX: r.Vertices[0].X, MaxX: r.Vertices[0].X,
		MinZ: r.Vertices[0].Z, MaxZ: r.Vertices[0].Z,
	}
	for _, v := range r.Vertices[1:] {
		box.MinX = math.Min(box.MinX, v.X)
		box.MaxX = math.Max(box.MaxX, v.X)
		box.MinZ = math.Min(box.MinZ, v.Z)
		box.MaxZ = math.Max(box.MaxZ, v.Z)
	}
	return box
}

// ContainsPoint reports whether p lies inside the loop, using a standard
// ray-casting crossing count along the +X direction. Points on the boundary
// may fall on either side; callers that care use an epsilon offset.
func (r Room) ContainsPoint(p Point) bool {
	return pointInPolygon(p, r.Vertices)
}

// ContainsRoom reports whether every vertex of o lies inside r. A room that
// only partially overlaps is not contained, which is exactly the policy the
// nesting resolver needs: partial overlap must not produce a hole.
func (r Room) ContainsRoom(o Room) bool {
	if len(r.Vertices) < 3 || len(o.Vertices) < 3 {
		return false
	}
	for _, v := range o.Vertices {
		if !pointInPolygon(v, r.Vertices) {
			return false
		}
	}
	return true
}

// SelfIntersects reports whether any two non-adjacent boundary edges cross.
func (r Room) SelfIntersects() bool {
	n := len(r.Vertices)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := r.Vertices[i]
		a2 := r.Vertices[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex with edge i, including the
			// wrap-around pair (last edge, first edge).
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1 := r.Vertices[j]
			b2 := r.Vertices[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// ConvexHull returns the convex hull of the room's vertices in
// counter-clockwise order (Andrew's monotone chain).
func (r Room) ConvexHull() []Point {
	return convexHull(r.Vertices)
}

func signedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	j := len(pts) - 1
	for i := range pts {
		area += (pts[j].X + pts[i].X) * (pts[j].Z - pts[i].Z)
		j = i
	}
	return area / 2
}

func perimeter(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	total := 0.0
	j := len(pts) - 1
	for i := range pts {
		total += pts[j].Distance(pts[i])
		j = i
	}
	return total
}

func centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(pts)))
}

func pointInPolygon(p Point, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Z > p.Z) != (pj.Z > p.Z) {
			crossX := (pj.X-pi.X)*(p.Z-pi.Z)/(pj.Z-pi.Z) + pi.X
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// segmentsIntersect reports whether segments a1a2 and b1b2 properly cross.
// Touching at a shared endpoint does not count as an intersection; traced
// loops legitimately share endpoints between consecutive walls.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func convexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return nil
	}
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	slices.SortFunc(sorted, func(a, b Point) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Z != b.Z {
			if a.Z < b.Z {
				return -1
			}
			return 1
		}
		return 0
	})
	sorted = slices.CompactFunc(sorted, func(a, b Point) bool {
		return a.X == b.X && a.Z == b.Z
	})
	if len(sorted) < 3 {
		return nil
	}

	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// minAreaBoundingRectArea returns the area of the smallest enclosing rectangle
// of the hull, found by rotating calipers over each hull edge direction.
func minAreaBoundingRectArea(hull []Point) float64 {
	if len(hull) < 3 {
		return 0
	}
	best := math.Inf(1)
	n := len(hull)
	for i := 0; i < n; i++ {
		edge := hull[(i+1)%n].Sub(hull[i])
		length := edge.Norm()
		if length == 0 {
			continue
		}
		// Unit axes of the rectangle candidate: the edge direction and
		// its perpendicular.
		ux := edge.Mul(1 / length)
		uz := Point{-ux.Z, ux.X}

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			u := p.X*ux.X + p.Z*ux.Z
			v := p.X*uz.X + p.Z*uz.Z
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
		area := (maxU - minU) * (maxV - minV)
		if area < best {
			best = area
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}
