package kdtree

import (
	"math"
	"sort"

	"github.com/habedi/gokdtree/core"
	"github.com/rs/zerolog/log"
)

// sweepPoint is one row of AllPairsSweep's private sorted snapshot.
type sweepPoint struct {
	originalIndex int
	coord         []float32
}

// AllPairsSweep runs the sorted-axis sweep baseline of spec §4.6: sort a
// snapshot of the points by axis 0, then scan with a sliding window pruned
// by |dx| > r. It builds its own copy of the coordinates rather than
// sorting the Tree's PointStore in place, so it never disturbs the layout
// Search and AllPairs rely on and is safe to call on a Tree that is also
// serving concurrent queries.
func (t *Tree) AllPairsSweep(r float64) ([]Pair, error) {
	if r <= 0 {
		return nil, core.NewError(core.InvalidArgument, "radius must be positive, got %v", r)
	}
	log.Debug().Float64("radius", r).Msg("sweep pair finder: all pairs")

	n := len(t.coordsByIdx)
	pts := make([]sweepPoint, n)
	for i, c := range t.coordsByIdx {
		pts[i] = sweepPoint{originalIndex: i, coord: c}
	}
	sort.Slice(pts, func(i, j int) bool {
		return pts[i].coord[0] < pts[j].coord[0]
	})

	r2 := r * r
	out := make([]Pair, 0)
	for i := 0; i < n; i++ {
		pi := pts[i]
		for j := i + 1; j < n; j++ {
			pj := pts[j]
			dx := float64(pj.coord[0]) - float64(pi.coord[0])
			if dx > r {
				break // axis-0 sorted: every later j is even further away
			}
			if d2 := squaredDistanceF32(pi.coord, pj.coord); d2 <= r2 {
				out = append(out, Pair{
					Index1:   pi.originalIndex,
					Index2:   pj.originalIndex,
					Distance: math.Sqrt(d2),
				})
			}
		}
	}
	return out, nil
}
