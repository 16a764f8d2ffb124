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

// TraceOptions controls endpoint matching during loop tracing.
type TraceOptions struct {
	// Epsilon is the maximum distance between two endpoints considered
	// the same location.
	Epsilon float64

	// KeyPrecision is the number of decimal places used to quantize
	// endpoints into adjacency-map keys.
	KeyPrecision int
}

// DefaultTraceOptions returns the tolerances used by the interactive editor.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{
		Epsilon:      VertexEpsilon,
		KeyPrecision: DefaultKeyPrecision,
	}
}

// wallRef is one wall endpoint registered in the adjacency map.
type wallRef struct {
	wall    int // index into the wall snapshot
	atStart bool
}

// WallGraph is a point-adjacency structure over a wall-list snapshot. Each
// quantized endpoint location accumulates the walls touching it, in wall
// order, so lookups at T-junctions resolve deterministically to the first
// matching wall.
type WallGraph struct {
	opts      TraceOptions
	walls     []Wall
	adjacency map[string][]wallRef
}

// NewWallGraph builds the adjacency map for the given snapshot. Degenerate
// walls (non-finite or zero-length) are excluded; they can never close a
// loop and would otherwise poison endpoint matching.
func NewWallGraph(walls []Wall, opts TraceOptions) *WallGraph {
	g := &WallGraph{
		opts:      opts,
		walls:     walls,
		adjacency: make(map[string][]wallRef, 2*len(walls)),
	}
	for i, w := range walls {
		if w.IsDegenerate() {
			continue
		}
		startKey := w.Start.quantizedKey(opts.KeyPrecision)
		endKey := w.End.quantizedKey(opts.KeyPrecision)
		g.adjacency[startKey] = append(g.adjacency[startKey], wallRef{wall: i, atStart: true})
		g.adjacency[endKey] = append(g.adjacency[endKey], wallRef{wall: i, atStart: false})
	}
	return g
}

// wallsAt returns the walls touching the given location.
func (g *WallGraph) wallsAt(p Point) []wallRef {
	return g.adjacency[p.quantizedKey(g.opts.KeyPrecision)]
}

// TraceRooms reconstructs closed room polygons from an unordered wall list
// using default tolerances. See TraceRoomsWithOptions.
func TraceRooms(walls []Wall) []Room {
	return TraceRoomsWithOptions(walls, DefaultTraceOptions())
}

// TraceRoomsWithOptions walks the wall adjacency graph and extracts closed
// loops. Each returned Room carries one vertex per traversed wall. Loops
// that fail to close (dead ends, fewer than three vertices) or that
// self-intersect come back with Valid set to false so callers can surface
// validation feedback while the user is still drawing.
//
// Tracing is deterministic: each loop starts at the unvisited endpoint with
// the smallest X coordinate, ties broken by smallest Z, and T-junctions
// (three or more walls meeting at a point) are resolved by taking the first
// unvisited wall in wall order. That is a best-effort policy, not a planar
// face enumeration; figure-eight layouts trace to whichever loop the order
// produces.
func TraceRoomsWithOptions(walls []Wall, opts TraceOptions) []Room {
	g := NewWallGraph(walls, opts)
	visited := make([]bool, len(walls))

	var rooms []Room
	for {
		start, ok := g.nextStartPoint(visited)
		if !ok {
			break
		}
		room := g.traceLoop(start, visited)
		if len(room.Vertices) > 0 {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// nextStartPoint picks the deterministic starting location among endpoints
// of unvisited walls: smallest X, ties broken by smallest Z.
func (g *WallGraph) nextStartPoint(visited []bool) (Point, bool) {
	var best Point
	found := false
	consider := func(p Point) {
		if !p.IsFinite() {
			return
		}
		if !found || p.X < best.X || (p.X == best.X && p.Z < best.Z) {
			best = p
			found = true
		}
	}
	for i, w := range g.walls {
		if visited[i] || w.IsDegenerate() {
			continue
		}
		consider(w.Start)
		consider(w.End)
	}
	return best, found
}

// traceLoop walks unvisited walls from start until the loop closes or the
// walk dead-ends. It never takes more than len(walls)+1 steps, which bounds
// the walk even on malformed input.
func (g *WallGraph) traceLoop(start Point, visited []bool) Room {
	var room Room
	current := start
	prevWall := -1

	maxSteps := len(g.walls) + 1
	for step := 0; step < maxSteps; step++ {
		next := wallRef{wall: -1}
		for _, ref := range g.wallsAt(current) {
			if visited[ref.wall] || ref.wall == prevWall {
				continue
			}
			next = ref
			break
		}
		if next.wall == -1 {
			// Dead end: no unvisited wall continues from here. The
			// partial trace is returned invalid.
			return room
		}

		w := g.walls[next.wall]
		visited[next.wall] = true
		room.Vertices = append(room.Vertices, current)
		room.WallIDs = append(room.WallIDs, w.ID)

		if next.atStart {
			current = w.End
		} else {
			current = w.Start
		}
		prevWall = next.wall

		if current.approxEqual(start, g.opts.Epsilon) {
			room.Closed = true
			if len(room.Vertices) >= 3 {
				room.Valid = !room.SelfIntersects()
			}
			return room
		}
	}
	// Step budget exhausted without closing; treat as invalid.
	return room
}
