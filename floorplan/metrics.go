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

// ValidationError is an abstract error code describing why a wall list does
// not form a valid room. The UI layer maps codes to localized messages.
type ValidationError string

const (
	// ErrorTooFewWalls: fewer than three walls can never enclose area.
	ErrorTooFewWalls ValidationError = "too_few_walls"

	// ErrorOpenLoop: the walls do not connect into a closed boundary.
	ErrorOpenLoop ValidationError = "open_loop"

	// ErrorSelfIntersecting: the traced boundary crosses itself.
	ErrorSelfIntersecting ValidationError = "self_intersecting"

	// ErrorZeroArea: the boundary closes but encloses no usable area.
	ErrorZeroArea ValidationError = "zero_area"
)

// zeroAreaThreshold flags rooms whose enclosed area is smaller than the
// minimum renderable triangle.
const zeroAreaThreshold = MinTriangleArea

// RoomMetrics is a read-only snapshot of room validity and shape statistics,
// recomputed synchronously whenever the wall list changes.
//
// Rectangularity, Convexity and Compactness are normalized shape-quality
// ratios in [0,1]: enclosed area against the minimum-area bounding
// rectangle, against the convex hull, and against a circle of the same
// perimeter respectively.
type RoomMetrics struct {
	Area              float64
	Perimeter         float64
	WallCount         int
	AverageWallLength float64
	Rectangularity    float64
	Convexity         float64
	Compactness       float64
	UsableArea        float64
	WallToFloorRatio  float64
	IsValid           bool
	ValidationErrors  []ValidationError
}

// CalculateRoomMetrics derives validity and statistics directly from a wall
// list snapshot. It is an independent entry point: it runs its own trace and
// never needs triangulation, so it works for invalid in-progress drawings.
// It never panics; any failure is reported through IsValid and
// ValidationErrors while the cheap descriptive statistics (wall count,
// perimeter) stay populated for live UX feedback.
func CalculateRoomMetrics(walls []Wall) RoomMetrics {
	return CalculateRoomMetricsWithOptions(walls, DefaultTraceOptions())
}

// CalculateRoomMetricsWithOptions is CalculateRoomMetrics with explicit
// tracing tolerances.
func CalculateRoomMetricsWithOptions(walls []Wall, opts TraceOptions) RoomMetrics {
	m := RoomMetrics{WallCount: len(walls)}

	measured := 0
	for _, w := range walls {
		if w.IsDegenerate() {
			continue
		}
		m.Perimeter += w.Length()
		measured++
	}
	if measured > 0 {
		m.AverageWallLength = m.Perimeter / float64(measured)
	}

	if len(walls) < 3 {
		m.ValidationErrors = append(m.ValidationErrors, ErrorTooFewWalls)
		return m
	}

	room, ok := mainRoom(TraceRoomsWithOptions(walls, opts))
	if !ok {
		m.ValidationErrors = append(m.ValidationErrors, ErrorOpenLoop)
		return m
	}
	if room.SelfIntersects() {
		m.ValidationErrors = append(m.ValidationErrors, ErrorSelfIntersecting)
		return m
	}

	area := room.Area()
	if area < zeroAreaThreshold {
		m.ValidationErrors = append(m.ValidationErrors, ErrorZeroArea)
		return m
	}

	m.Area = area
	m.IsValid = true

	hull := room.ConvexHull()
	if hullArea := math.Abs(signedArea(hull)); hullArea > 0 {
		m.Convexity = clampRatio(area / hullArea)
	}
	if rectArea := minAreaBoundingRectArea(hull); rectArea > 0 {
		m.Rectangularity = clampRatio(area / rectArea)
	}
	if m.Perimeter > 0 {
		m.Compactness = clampRatio(4 * math.Pi * area / (m.Perimeter * m.Perimeter))
	}
	m.UsableArea = usableArea(area, m.Perimeter, walls)
	if wallSurface := totalWallSurface(walls); wallSurface > 0 {
		m.WallToFloorRatio = wallSurface / area
	}
	return m
}

// mainRoom selects the room the metrics describe: the largest closed loop
// with at least three vertices. Interactive drawings nearly always trace a
// single room; when holes exist the outer boundary is by definition the
// largest. Self-intersection is left to the caller so it can be reported
// as its own validation code.
func mainRoom(rooms []Room) (Room, bool) {
	best := -1
	for i, r := range rooms {
		if !r.Closed || len(r.Vertices) < 3 {
			continue
		}
		if best == -1 || r.Area() > rooms[best].Area() {
			best = i
		}
	}
	if best == -1 {
		return Room{}, false
	}
	return rooms[best], true
}

// usableArea erodes the floor area by half the mean wall thickness along
// the perimeter, approximating the strip of floor the walls themselves
// occupy. Clamped at zero for thin slivers.
func usableArea(area, perimeter float64, walls []Wall) float64 {
	if len(walls) == 0 {
		return area
	}
	meanThickness := 0.0
	for _, w := range walls {
		meanThickness += w.Thickness
	}
	meanThickness /= float64(len(walls))
	return math.Max(0, area-perimeter*meanThickness/2)
}

// totalWallSurface sums one-sided wall face areas (length × height).
func totalWallSurface(walls []Wall) float64 {
	total := 0.0
	for _, w := range walls {
		if w.IsDegenerate() {
			continue
		}
		total += w.Length() * w.Height
	}
	return total
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
