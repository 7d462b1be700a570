package kdtree

import (
	"math"

	"github.com/habedi/gokdtree/core"
	"github.com/habedi/gokdtree/internal/region"
	"github.com/rs/zerolog/log"
)

// Search runs a fixed-radius point query from center, returning one Hit per
// point within r of center (spec §4.4). Results are returned by value, not
// through a shared buffer, so concurrent Search calls against the same
// built Tree are safe.
func (t *Tree) Search(center []float64, r float64) ([]Hit, error) {
	if r <= 0 {
		return nil, core.NewError(core.InvalidArgument, "radius must be positive, got %v", r)
	}
	if len(center) != t.dim {
		return nil, core.NewError(core.InvalidArgument, "center has %d dimensions, want %d", len(center), t.dim)
	}
	log.Debug().Float64("radius", r).Msg("point query: search")

	lo := make([]float64, t.dim)
	hi := make([]float64, t.dim)
	for i, c := range center {
		lo[i] = c - r
		hi[i] = c + r
	}
	q := region.New(lo, hi)
	r2 := r * r

	out := make([]Hit, 0)
	nodeRegion := region.NewUnbounded(t.dim)
	t.searchNode(t.root, nodeRegion, center, r2, q, &out)
	return out, nil
}

func (t *Tree) searchNode(node *Node, nodeRegion region.Region, center []float64, r2 float64, q region.Region, out *[]Hit) {
	if node.leaf {
		t.reportPoints(node, center, r2, out)
		return
	}
	d := node.cutDim
	v := float64(node.cutValue)

	if rel := nodeRegion.ClassifyLeft(d, v); rel != region.Outside {
		childRegion := nodeRegion
		if rel == region.Splits {
			childRegion = nodeRegion.SplitLeft(d, v)
		}
		t.descend(node.left, childRegion, center, r2, q, out)
	}
	if rel := nodeRegion.ClassifyRight(d, v); rel != region.Outside {
		childRegion := nodeRegion
		if rel == region.Splits {
			childRegion = nodeRegion.SplitRight(d, v)
		}
		t.descend(node.right, childRegion, center, r2, q, out)
	}
}

func (t *Tree) descend(node *Node, nodeRegion region.Region, center []float64, r2 float64, q region.Region, out *[]Hit) {
	switch nodeRegion.IntersectWithMargin(q, 0) {
	case region.Disjoint:
		return
	case region.Contained:
		// The box contains the points, not vice-versa: every point in this
		// subtree still needs the true-distance check against the sphere.
		t.reportSubtree(node, center, r2, out)
	case region.Overlapping:
		t.searchNode(node, nodeRegion, center, r2, q, out)
	}
}

func (t *Tree) reportPoints(node *Node, center []float64, r2 float64, out *[]Hit) {
	for i := node.start; i < node.end; i++ {
		d2 := squaredDistance(center, t.store.Coord(i))
		if d2 <= r2 {
			*out = append(*out, Hit{OriginalIndex: t.store.OriginalIndex(i), Distance: math.Sqrt(d2)})
		}
	}
}

func (t *Tree) reportSubtree(node *Node, center []float64, r2 float64, out *[]Hit) {
	if node.leaf {
		t.reportPoints(node, center, r2, out)
		return
	}
	t.reportSubtree(node.left, center, r2, out)
	t.reportSubtree(node.right, center, r2, out)
}
