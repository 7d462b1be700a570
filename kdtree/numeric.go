package kdtree

import "github.com/habedi/gokdtree/core"

// Numeric is the set of element types SetData accepts for an input point
// buffer: float32, float64, and signed/unsigned 32- and 64-bit integers.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint32 | ~uint64
}

// toFloat32Buffer copies points (N rows of dim columns each) into a single
// contiguous float32 buffer plus per-row views into it, coercing each
// element by its static Go type. Very large int64/uint64 magnitudes lose
// precision in this conversion — that loss is preserved deliberately (see
// DESIGN.md's "integer input truncation" decision), not guarded against.
func toFloat32Buffer[T Numeric](points [][]T, dim int) ([]float32, [][]float32, error) {
	n := len(points)
	buf := make([]float32, n*dim)
	rows := make([][]float32, n)
	for i, row := range points {
		if len(row) != dim {
			return nil, nil, core.NewError(core.InvalidArgument,
				"row %d has length %d, want %d", i, len(row), dim)
		}
		dst := buf[i*dim : (i+1)*dim]
		for j, v := range row {
			dst[j] = float32(v)
		}
		rows[i] = dst
	}
	return buf, rows, nil
}

// toFloat64 converts a single numeric vector into a fresh float64 slice.
func toFloat64[T Numeric](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
