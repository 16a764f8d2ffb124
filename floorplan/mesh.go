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

// FloorMesh is the renderable floor geometry for one or more room groups.
// Positions hold three floats per vertex (x, 0, z); Normals hold (0, 1, 0)
// per vertex; UVs hold two floats per vertex normalized to the owning
// group's bounding box; Indices reference vertices in triangle triples.
// A mesh is built fresh per geometry change and never mutated in place.
type FloorMesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32

	// Bounds is the axis-aligned extent of the whole mesh on the
	// horizontal plane. Only populated when geometry optimization is on.
	Bounds Rect
}

// VertexCount returns the number of vertices in the mesh.
func (m *FloorMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *FloorMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Area returns the summed area of all mesh triangles.
func (m *FloorMesh) Area() float64 {
	pt := func(i uint32) Point {
		return Point{X: float64(m.Positions[3*i]), Z: float64(m.Positions[3*i+2])}
	}
	total := 0.0
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t := Triangle{pt(m.Indices[i]), pt(m.Indices[i+1]), pt(m.Indices[i+2])}
		total += t.Area()
	}
	return total
}

// MeshOptions are the floor-mesh generation toggles.
type MeshOptions struct {
	// UseAdvancedTriangulation selects the ear-clipping cascade; when off,
	// a naive fan triangulation is used instead.
	UseAdvancedTriangulation bool

	// HandleHoles enables the hole-subtraction path for nested rooms.
	HandleHoles bool

	// GenerateUVs controls whether the UV buffer is populated.
	GenerateUVs bool

	// OptimizeGeometry controls whether normals and bounds are computed.
	OptimizeGeometry bool
}

// DefaultMeshOptions enables every feature.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		UseAdvancedTriangulation: true,
		HandleHoles:              true,
		GenerateUVs:              true,
		OptimizeGeometry:         true,
	}
}

// BuildFloorMesh triangulates each room group and concatenates the results
// into a single mesh with a running vertex offset. Invalid or degenerate
// groups contribute nothing; given only those, the returned mesh is empty
// rather than nil.
func BuildFloorMesh(groups []RoomGroup, opts MeshOptions) *FloorMesh {
	mesh := &FloorMesh{}

	// SoA work arrays for the whole mesh; interleaved at the end.
	var xs, zs []float32
	var us, vs []float32

	for _, g := range groups {
		tris := triangulateGroup(g, opts)
		if len(tris) == 0 {
			continue
		}

		groupStart := len(xs)
		base := uint32(groupStart)
		index := make(map[string]uint32)
		for _, t := range tris {
			for _, p := range t {
				key := p.quantizedKey(DefaultKeyPrecision)
				id, seen := index[key]
				if !seen {
					id = base + uint32(len(index))
					index[key] = id
					xs = append(xs, float32(p.X))
					zs = append(zs, float32(p.Z))
				}
				mesh.Indices = append(mesh.Indices, id)
			}
		}

		if opts.GenerateUVs {
			gx := xs[groupStart:]
			gz := zs[groupStart:]
			groupUs := make([]float32, len(gx))
			groupVs := make([]float32, len(gz))
			normalizeUV(gx, groupUs)
			normalizeUV(gz, groupVs)
			us = append(us, groupUs...)
			vs = append(vs, groupVs...)
		}
	}

	vertexCount := len(xs)
	mesh.Positions = make([]float32, 0, 3*vertexCount)
	for i := 0; i < vertexCount; i++ {
		mesh.Positions = append(mesh.Positions, xs[i], 0, zs[i])
	}
	if opts.GenerateUVs {
		mesh.UVs = make([]float32, 0, 2*vertexCount)
		for i := 0; i < vertexCount; i++ {
			mesh.UVs = append(mesh.UVs, us[i], vs[i])
		}
	}
	if opts.OptimizeGeometry {
		mesh.Normals = make([]float32, 0, 3*vertexCount)
		for i := 0; i < vertexCount; i++ {
			mesh.Normals = append(mesh.Normals, 0, 1, 0)
		}
		if vertexCount > 0 {
			minX, maxX := BaseBatchMinMax(xs)
			minZ, maxZ := BaseBatchMinMax(zs)
			mesh.Bounds = Rect{
				MinX: float64(minX), MaxX: float64(maxX),
				MinZ: float64(minZ), MaxZ: float64(maxZ),
			}
		}
	}
	return mesh
}

// triangulateGroup selects the triangulation path for one room group.
func triangulateGroup(g RoomGroup, opts MeshOptions) []Triangle {
	outer := g.Main.EnsureCounterClockwise()
	if len(outer.Vertices) < 3 {
		return nil
	}

	var holes [][]Point
	if opts.HandleHoles {
		for _, h := range g.Holes {
			if len(h.Vertices) >= 3 {
				holes = append(holes, h.EnsureClockwise().Vertices)
			}
		}
	}

	if !opts.UseAdvancedTriangulation {
		tris := FanTriangulate(outer.Vertices)
		return filterHoleTriangles(tris, holes)
	}
	if len(holes) > 0 {
		return TriangulateWithHoles(outer.Vertices, holes)
	}
	return Triangulate(outer.Vertices)
}

// normalizeUV maps coordinates into [0,1] against their own extent. A
// degenerate (zero-width) extent maps everything to 0.
func normalizeUV(data, out []float32) {
	if len(data) == 0 {
		return
	}
	minV, maxV := BaseBatchMinMax(data)
	extent := maxV - minV
	if extent <= 0 {
		clear(out)
		return
	}
	BaseBatchScaleOffset(data, -minV, 1/extent, out)
}
