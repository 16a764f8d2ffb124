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
	"testing"
)

func buildSquareMesh(t *testing.T, opts MeshOptions) *FloorMesh {
	t.Helper()
	walls := makeLoopWalls(rectPoints(0, 0, 1, 1))
	rooms := TraceRooms(walls)
	groups := ResolveNesting(rooms)
	return BuildFloorMesh(groups, opts)
}

func TestBuildFloorMeshUnitSquare(t *testing.T) {
	mesh := buildSquareMesh(t, DefaultMeshOptions())

	if got := mesh.TriangleCount(); got != 2 {
		t.Fatalf("Expected 2 triangles for the unit square, got %d", got)
	}
	if got := mesh.VertexCount(); got != 4 {
		t.Errorf("Expected 4 deduplicated vertices, got %d", got)
	}
	if got := mesh.Area(); math.Abs(got-1) > 1e-6 {
		t.Errorf("Expected mesh area 1, got %v", got)
	}

	// Floor vertices sit on the horizontal plane with up normals.
	for i := 1; i < len(mesh.Positions); i += 3 {
		if mesh.Positions[i] != 0 {
			t.Fatalf("Vertex %d not on the floor plane: y=%v", i/3, mesh.Positions[i])
		}
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		t.Fatalf("Expected one normal per vertex, got %d floats", len(mesh.Normals))
	}
	for i := 0; i < len(mesh.Normals); i += 3 {
		if mesh.Normals[i] != 0 || mesh.Normals[i+1] != 1 || mesh.Normals[i+2] != 0 {
			t.Fatalf("Vertex %d normal not (0,1,0)", i/3)
		}
	}
}

func TestBuildFloorMeshUVsNormalized(t *testing.T) {
	walls := makeLoopWalls(rectPoints(3, 7, 4, 2)) // offset from the origin
	groups := ResolveNesting(TraceRooms(walls))
	mesh := BuildFloorMesh(groups, DefaultMeshOptions())

	if len(mesh.UVs) != 2*mesh.VertexCount() {
		t.Fatalf("Expected 2 UV floats per vertex, got %d", len(mesh.UVs))
	}
	sawZero, sawOne := false, false
	for _, uv := range mesh.UVs {
		if uv < 0 || uv > 1 {
			t.Fatalf("UV outside [0,1]: %v", uv)
		}
		if uv == 0 {
			sawZero = true
		}
		if uv == 1 {
			sawOne = true
		}
	}
	if !sawZero || !sawOne {
		t.Error("UVs should span the full [0,1] range over the bounding box")
	}
}

func TestBuildFloorMeshOptionToggles(t *testing.T) {
	noUV := buildSquareMesh(t, MeshOptions{UseAdvancedTriangulation: true})
	if len(noUV.UVs) != 0 {
		t.Errorf("Expected no UVs when generation is off, got %d floats", len(noUV.UVs))
	}
	if len(noUV.Normals) != 0 {
		t.Errorf("Expected no normals when optimization is off, got %d floats", len(noUV.Normals))
	}

	fan := buildSquareMesh(t, MeshOptions{GenerateUVs: true, OptimizeGeometry: true})
	if got := fan.TriangleCount(); got != 2 {
		t.Errorf("Fan triangulation of a square should give 2 triangles, got %d", got)
	}
	if got := fan.Area(); math.Abs(got-1) > 1e-6 {
		t.Errorf("Expected fan mesh area 1, got %v", got)
	}
}

func TestBuildFloorMeshBounds(t *testing.T) {
	walls := makeLoopWalls(rectPoints(-2, 1, 5, 3))
	groups := ResolveNesting(TraceRooms(walls))
	mesh := BuildFloorMesh(groups, DefaultMeshOptions())

	want := Rect{MinX: -2, MinZ: 1, MaxX: 3, MaxZ: 4}
	if mesh.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", mesh.Bounds, want)
	}
}

func TestBuildFloorMeshWithHole(t *testing.T) {
	walls := append(makeLoopWalls(rectPoints(0, 0, 10, 10)),
		makeLoopWalls(rectPoints(4, 4, 2, 2))...)
	rooms := TraceRooms(walls)
	groups := ResolveNesting(rooms)
	if len(groups) != 1 || len(groups[0].Holes) != 1 {
		t.Fatalf("Expected one group with one hole, got %+v", groups)
	}

	withHoles := BuildFloorMesh(groups, DefaultMeshOptions())
	ignored := BuildFloorMesh(groups, MeshOptions{UseAdvancedTriangulation: true})

	// Triangles whose centroid falls in the hole are dropped, so hole
	// handling can only remove coverage.
	if withHoles.Area() > ignored.Area() {
		t.Errorf("Hole handling should not add area: %v > %v", withHoles.Area(), ignored.Area())
	}
	hole := rectPoints(4, 4, 2, 2)
	for i := 0; i+2 < len(withHoles.Indices); i += 3 {
		a := withHoles.Indices[i] * 3
		b := withHoles.Indices[i+1] * 3
		c := withHoles.Indices[i+2] * 3
		tri := Triangle{
			{float64(withHoles.Positions[a]), float64(withHoles.Positions[a+2])},
			{float64(withHoles.Positions[b]), float64(withHoles.Positions[b+2])},
			{float64(withHoles.Positions[c]), float64(withHoles.Positions[c+2])},
		}
		if pointInPolygon(tri.Centroid(), hole) {
			t.Errorf("Triangle %d centroid %v inside the hole", i/3, tri.Centroid())
		}
	}
}

func TestBuildFloorMeshEmptyInput(t *testing.T) {
	mesh := BuildFloorMesh(nil, DefaultMeshOptions())
	if mesh == nil {
		t.Fatal("Mesh must never be nil")
	}
	if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 {
		t.Errorf("Expected empty mesh, got %d vertices / %d triangles",
			mesh.VertexCount(), mesh.TriangleCount())
	}
}

func TestBaseBatchMinMax(t *testing.T) {
	data := []float32{3, -1, 7, 0.5, 7, -2.5, 4}
	minV, maxV := BaseBatchMinMax(data)
	if minV != -2.5 || maxV != 7 {
		t.Errorf("BaseBatchMinMax = (%v, %v), want (-2.5, 7)", minV, maxV)
	}

	if minV, maxV := BaseBatchMinMax([]float64(nil)); minV != 0 || maxV != 0 {
		t.Errorf("Empty input should return zeros, got (%v, %v)", minV, maxV)
	}
}

func TestBaseBatchScaleOffset(t *testing.T) {
	data := []float32{2, 4, 6, 8, 10, 12, 14, 16, 18}
	out := make([]float32, len(data))
	BaseBatchScaleOffset(data, -2, 0.5, out) // (v-2)/2
	for i, v := range data {
		want := (v - 2) / 2
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}
