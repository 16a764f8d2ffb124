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

// Package floorplan reconstructs room polygons from unordered wall segments
// and derives floor meshes and shape metrics from them.
//
// Coordinates live on the horizontal plane: X and Z, with the vertical axis
// fixed at zero for floor purposes. All lengths are in metres.
package floorplan

import (
	"fmt"
	"math"
)

// VertexEpsilon is the tolerance used when deciding whether two wall
// endpoints occupy the same location. Endpoints produced by interactive
// editing rarely match bit-for-bit, so all adjacency tests are performed
// up to this distance.
const VertexEpsilon = 1e-3

// DefaultKeyPrecision is the number of decimal places used when quantizing
// points into adjacency-map keys. It matches VertexEpsilon: two points
// within the tolerance quantize to the same or neighboring keys.
const DefaultKeyPrecision = 3

// Point is a location on the horizontal plane.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Z - o.Z}
}

// Add returns the translation of p by o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Z + o.Z}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Z * f}
}

// Norm returns the distance of p from the origin.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Z)
}

// Distance returns the distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Z-o.Z)
}

// ApproxEqual reports whether p and o are within VertexEpsilon of each other.
// Non-finite coordinates are never equal to anything, including themselves,
// so NaN/Inf input naturally fails every adjacency test.
func (p Point) ApproxEqual(o Point) bool {
	return p.approxEqual(o, VertexEpsilon)
}

func (p Point) approxEqual(o Point, eps float64) bool {
	if !p.IsFinite() || !o.IsFinite() {
		return false
	}
	return p.Distance(o) <= eps
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// quantizedKey maps p to a string key with coordinates rounded to the given
// number of decimal places. Points that snap to the same grid cell share a
// key, which is how the wall graph clusters coincident endpoints. Values
// that round to zero from below would otherwise format as "-0", splitting
// the cell at the origin in two, so negative zero is collapsed first.
func (p Point) quantizedKey(precision int) string {
	scale := math.Pow(10, float64(precision))
	x := math.Round(p.X*scale) / scale
	z := math.Round(p.Z*scale) / scale
	if x == 0 {
		x = 0
	}
	if z == 0 {
		z = 0
	}
	return fmt.Sprintf("%.*f,%.*f", precision, x, precision, z)
}

// cross returns the z-component of the cross product of the vectors a→b and
// a→c. Its sign encodes the turn direction at b when walking a→b→c.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
}
