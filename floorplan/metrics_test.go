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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMetricsUnitSquare(t *testing.T) {
	walls := makeLoopWalls(rectPoints(0, 0, 1, 1)) // height 2.5, thickness 0.1

	m := CalculateRoomMetrics(walls)
	want := RoomMetrics{
		Area:              1.0,
		Perimeter:         4.0,
		WallCount:         4,
		AverageWallLength: 1.0,
		Rectangularity:    1.0,
		Convexity:         1.0,
		Compactness:       math.Pi / 4,
		UsableArea:        1.0 - 4.0*0.05, // perimeter x thickness/2
		WallToFloorRatio:  10.0,           // 4 walls x 1m x 2.5m / 1m²
		IsValid:           true,
	}
	if diff := cmp.Diff(want, m, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsZeroWalls(t *testing.T) {
	m := CalculateRoomMetrics(nil)
	if m.IsValid {
		t.Error("Zero walls must not be valid")
	}
	if m.Area != 0 {
		t.Errorf("Expected area 0, got %v", m.Area)
	}
	if !slices.Contains(m.ValidationErrors, ErrorTooFewWalls) {
		t.Errorf("Expected %q, got %v", ErrorTooFewWalls, m.ValidationErrors)
	}
}

func TestMetricsAverageIgnoresDegenerateWalls(t *testing.T) {
	// A zero-length wall contributes nothing to the perimeter, so it must
	// not dilute the average either.
	walls := append(makeLoopWalls(rectPoints(0, 0, 1, 1)),
		Wall{ID: "z", Start: Point{5, 5}, End: Point{5, 5}, Height: 2.5, Thickness: 0.1})

	m := CalculateRoomMetrics(walls)
	if m.WallCount != 5 {
		t.Errorf("Expected wall count 5, got %d", m.WallCount)
	}
	if got, want := m.Perimeter, 4.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected perimeter %v, got %v", want, got)
	}
	if got, want := m.AverageWallLength, 1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected average wall length %v, got %v", want, got)
	}
}

func TestMetricsCollinearWalls(t *testing.T) {
	// Three walls along a line: the loop closes going out and back but
	// encloses nothing.
	walls := []Wall{
		{ID: "a", Start: Point{0, 0}, End: Point{1, 0}},
		{ID: "b", Start: Point{1, 0}, End: Point{2, 0}},
		{ID: "c", Start: Point{2, 0}, End: Point{0, 0}},
	}
	m := CalculateRoomMetrics(walls)
	if m.IsValid {
		t.Error("Collinear walls must not be valid")
	}
	if !slices.Contains(m.ValidationErrors, ErrorZeroArea) {
		t.Errorf("Expected %q, got %v", ErrorZeroArea, m.ValidationErrors)
	}
}

func TestMetricsOpenLoop(t *testing.T) {
	walls := makeLoopWalls(rectPoints(0, 0, 2, 2))[:3]
	m := CalculateRoomMetrics(walls)
	if m.IsValid {
		t.Error("Open loop must not be valid")
	}
	if !slices.Contains(m.ValidationErrors, ErrorOpenLoop) {
		t.Errorf("Expected %q, got %v", ErrorOpenLoop, m.ValidationErrors)
	}
	// Descriptive statistics stay live for in-progress drawings.
	if m.WallCount != 3 {
		t.Errorf("Expected wall count 3, got %d", m.WallCount)
	}
	if math.Abs(m.Perimeter-6) > 1e-9 {
		t.Errorf("Expected perimeter 6, got %v", m.Perimeter)
	}
}

func TestMetricsSelfIntersecting(t *testing.T) {
	walls := makeLoopWalls([]Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}})
	m := CalculateRoomMetrics(walls)
	if m.IsValid {
		t.Error("Bowtie must not be valid")
	}
	if !slices.Contains(m.ValidationErrors, ErrorSelfIntersecting) {
		t.Errorf("Expected %q, got %v", ErrorSelfIntersecting, m.ValidationErrors)
	}
}

func TestMetricsConcaveRoom(t *testing.T) {
	// The L-shape is less rectangular, less convex and less compact than
	// a square, but all ratios stay in (0,1].
	walls := makeLoopWalls([]Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}})
	m := CalculateRoomMetrics(walls)
	if !m.IsValid {
		t.Fatalf("L-shape should be valid, got %v", m.ValidationErrors)
	}
	if math.Abs(m.Area-3) > 1e-9 {
		t.Errorf("Expected area 3, got %v", m.Area)
	}
	// Area 3 over its 2x2 minimum bounding rectangle.
	if math.Abs(m.Rectangularity-0.75) > 1e-9 {
		t.Errorf("Expected rectangularity 0.75, got %v", m.Rectangularity)
	}
	// Area 3 over hull area 3.5.
	if math.Abs(m.Convexity-3/3.5) > 1e-9 {
		t.Errorf("Expected convexity %v, got %v", 3/3.5, m.Convexity)
	}
	if m.Compactness <= 0 || m.Compactness >= 1 {
		t.Errorf("Expected compactness in (0,1), got %v", m.Compactness)
	}
}

func TestMetricsNeverPanics(t *testing.T) {
	inputs := [][]Wall{
		nil,
		{{ID: "nan", Start: Point{math.NaN(), math.NaN()}, End: Point{1, 1}}},
		{{ID: "inf", Start: Point{math.Inf(1), 0}, End: Point{1, 1}}, {ID: "b"}, {ID: "c"}},
		makeLoopWalls(rectPoints(0, 0, 0.0001, 0.0001)), // tiny but closed
	}
	for i, walls := range inputs {
		m := CalculateRoomMetrics(walls)
		if m.IsValid && m.Area == 0 {
			t.Errorf("Input %d: valid metrics must carry a non-zero area", i)
		}
	}
}
