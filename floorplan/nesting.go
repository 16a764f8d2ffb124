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
	"github.com/peterstace/simplefeatures/rtree"
)

// RoomRelation models the parent/child relationship of one traced room
// within a set of rooms.
type RoomRelation struct {
	ParentID int   // -1 if the room is a main (outer) room
	Holes    []int // indices of rooms that are direct holes of this room
}

// IsShell returns true if the room has no parent.
func (r RoomRelation) IsShell() bool {
	return r.ParentID < 0
}

// IsHole returns true if the room has a parent.
func (r RoomRelation) IsHole() bool {
	return !r.IsShell()
}

// RoomGroup pairs a main room with the holes cut out of its floor.
type RoomGroup struct {
	Main  Room
	Holes []Room
}

// ComputeRoomNesting determines, for each room, its direct enclosing parent.
// Room B is nested in room A when every vertex of B lies inside A; among
// all enclosing candidates the one with the smallest area is the direct
// parent. A room that only partially overlaps another encloses nothing and
// is enclosed by nothing, so it stays a shell; rendering a partial overlap
// as a hole would produce a self-intersecting floor boundary.
//
// Nesting is a global relationship among all current rooms, so it is
// recomputed from scratch on every geometry change rather than updated
// incrementally.
func ComputeRoomNesting(rooms []Room) []RoomRelation {
	relations := make([]RoomRelation, len(rooms))
	for i := range relations {
		relations[i].ParentID = -1
	}
	if len(rooms) < 2 {
		return relations
	}

	// Candidate filtering: a parent's bounding box must cover the child's.
	// The boxes go into an R-tree so each room only containment-tests the
	// rooms whose boxes overlap its own.
	var tree rtree.RTree
	boxes := make([]rtree.Box, len(rooms))
	for i, r := range rooms {
		if !r.Valid {
			continue
		}
		bb := r.BoundingBox()
		boxes[i] = rtree.Box{MinX: bb.MinX, MinY: bb.MinZ, MaxX: bb.MaxX, MaxY: bb.MaxZ}
		tree.Insert(boxes[i], i)
	}

	for i, r := range rooms {
		if !r.Valid {
			continue
		}
		bestParent := -1
		bestArea := 0.0
		_ = tree.Search(boxes[i], func(j int) error {
			if j == i || !rooms[j].Valid {
				return nil
			}
			if !boxCovers(boxes[j], boxes[i]) {
				return nil
			}
			if !rooms[j].ContainsRoom(r) {
				return nil
			}
			area := rooms[j].Area()
			if bestParent == -1 || area < bestArea {
				bestParent = j
				bestArea = area
			}
			return nil
		})
		if bestParent >= 0 {
			relations[i].ParentID = bestParent
		}
	}

	// A room at even nesting depth is a floor, not a hole: a courtyard
	// building inside a hole gets its own floor again. Detach even-depth
	// rooms so they group as shells, then record direct holes.
	for i := range relations {
		if depthOf(relations, i)%2 == 0 {
			relations[i].ParentID = -1
		}
	}
	for i, rel := range relations {
		if rel.ParentID >= 0 {
			p := rel.ParentID
			relations[p].Holes = append(relations[p].Holes, i)
		}
	}
	return relations
}

// ResolveNesting groups traced rooms into (main, holes) pairs for the mesh
// builder. Invalid rooms are dropped; they have no well-defined interior.
func ResolveNesting(rooms []Room) []RoomGroup {
	relations := ComputeRoomNesting(rooms)
	var groups []RoomGroup
	for i, rel := range relations {
		if !rooms[i].Valid || !rel.IsShell() {
			continue
		}
		g := RoomGroup{Main: rooms[i]}
		for _, h := range rel.Holes {
			g.Holes = append(g.Holes, rooms[h])
		}
		groups = append(groups, g)
	}
	return groups
}

func depthOf(relations []RoomRelation, i int) int {
	depth := 0
	for relations[i].ParentID >= 0 {
		i = relations[i].ParentID
		depth++
		if depth > len(relations) {
			break // cycle protection
		}
	}
	return depth
}

func boxCovers(outer, inner rtree.Box) bool {
	return outer.MinX <= inner.MinX && outer.MinY <= inner.MinY &&
		outer.MaxX >= inner.MaxX && outer.MaxY >= inner.MaxY
}
