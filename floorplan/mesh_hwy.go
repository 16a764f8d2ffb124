package floorplan

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Mesh assembly keeps vertex coordinates in Structure of Arrays layout
// (separate X and Z slices) until the final interleave, so extent and UV
// computation run as batch kernels over contiguous float slices.

// BaseBatchMinMax computes the minimum and maximum values in a slice.
// Used for bounding boxes of mesh coordinate arrays.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Initialize with the first value broadcasted so Inf/NaN sentinels
	// never enter the reduction.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Keep the running min/max in the masked-off lanes so the
			// zero padding from MaskLoad cannot leak into the result.
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// BaseBatchScaleOffset computes out[i] = (data[i] + offset) * scale.
// Used to normalize mesh coordinates into [0,1] UV space: offset is the
// negated bounding-box minimum and scale the inverse extent.
func BaseBatchScaleOffset[T hwy.Floats](data []T, offset, scale T, out []T) {
	size := min(len(data), len(out))

	vOffset := hwy.Set(offset)
	vScale := hwy.Set(scale)

	hwy.ProcessWithTail[T](size,
		func(o int) {
			v := hwy.Load(data[o:])
			v = hwy.Mul(hwy.Add(v, vOffset), vScale)
			hwy.Store(v, out[o:])
		},
		func(o, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[o:])
			v = hwy.Mul(hwy.Add(v, vOffset), vScale)
			hwy.MaskStore(mask, v, out[o:])
		},
	)
}
