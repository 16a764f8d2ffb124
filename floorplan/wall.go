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

	"github.com/google/uuid"
)

// Wall is a straight wall segment drawn in the plan view. Identity is the
// ID; geometry is the start/end endpoints on the horizontal plane plus a
// height and thickness used for 3D extrusion and metric erosion.
//
// The geometry core never mutates walls. Every operation takes the wall
// list as an immutable snapshot and derives polygons and metrics from it.
type Wall struct {
	ID        string  `json:"id"`
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

// NewWall returns a wall with a freshly allocated ID.
func NewWall(start, end Point, height, thickness float64) Wall {
	return Wall{
		ID:        uuid.NewString(),
		Start:     start,
		End:       end,
		Height:    height,
		Thickness: thickness,
	}
}

// Length returns the length of the wall segment.
func (w Wall) Length() float64 {
	return w.Start.Distance(w.End)
}

// IsDegenerate reports whether the wall cannot participate in a room
// boundary: non-finite endpoints, or endpoints closer than VertexEpsilon.
func (w Wall) IsDegenerate() bool {
	if !w.Start.IsFinite() || !w.End.IsFinite() {
		return true
	}
	if math.IsNaN(w.Height) || math.IsNaN(w.Thickness) {
		return true
	}
	return w.Start.ApproxEqual(w.End)
}
