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
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// DecodeWalls reads a persisted wall list: a JSON array of
// {id, start, end, height, thickness} objects. This is the ingestion
// boundary where malformed upstream data is rejected: non-finite
// coordinates or dimensions are an error here rather than a crash deeper
// in the geometry pass.
func DecodeWalls(r io.Reader) ([]Wall, error) {
	var walls []Wall
	dec := json.NewDecoder(r)
	if err := dec.Decode(&walls); err != nil {
		return nil, fmt.Errorf("decoding wall list: %w", err)
	}
	for i, w := range walls {
		if err := validateWall(w); err != nil {
			return nil, fmt.Errorf("wall %d (%s): %w", i, w.ID, err)
		}
	}
	return walls, nil
}

// EncodeWalls writes the wall list in the persisted JSON format.
func EncodeWalls(w io.Writer, walls []Wall) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(walls); err != nil {
		return fmt.Errorf("encoding wall list: %w", err)
	}
	return nil
}

func validateWall(w Wall) error {
	if !w.Start.IsFinite() {
		return fmt.Errorf("non-finite start point (%v, %v)", w.Start.X, w.Start.Z)
	}
	if !w.End.IsFinite() {
		return fmt.Errorf("non-finite end point (%v, %v)", w.End.X, w.End.Z)
	}
	if math.IsNaN(w.Height) || math.IsInf(w.Height, 0) || w.Height < 0 {
		return fmt.Errorf("invalid height %v", w.Height)
	}
	if math.IsNaN(w.Thickness) || math.IsInf(w.Thickness, 0) || w.Thickness < 0 {
		return fmt.Errorf("invalid thickness %v", w.Thickness)
	}
	return nil
}
