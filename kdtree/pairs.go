package kdtree

import (
	"math"

	"github.com/habedi/gokdtree/core"
	"github.com/habedi/gokdtree/internal/region"
	"github.com/rs/zerolog/log"
)

// AllPairs runs the all-pairs fixed-radius neighbor search of spec §4.5: a
// dual descent of the tree against itself, reporting each unordered pair
// {i,j}, i != j, with ||P[i]-P[j]|| <= r exactly once.
func (t *Tree) AllPairs(r float64) ([]Pair, error) {
	if r <= 0 {
		return nil, core.NewError(core.InvalidArgument, "radius must be positive, got %v", r)
	}
	log.Debug().Float64("radius", r).Msg("pair finder: all pairs")

	r2 := r * r
	out := make([]Pair, 0)
	nodeRegion := region.NewUnbounded(t.dim)
	t.pfDescend(t.root, nodeRegion, r2, &out)
	return out, nil
}

// pfDescend is the single-tree descent: it emits within-bucket pairs at
// leaves and, for internal nodes, recurses into each child before pairing
// the two sibling subtrees against each other.
func (t *Tree) pfDescend(node *Node, nodeRegion region.Region, r2 float64, out *[]Pair) {
	if node.leaf {
		t.emitWithinBucket(node, r2, out)
		return
	}
	leftRegion, leftOK := partitionLeft(nodeRegion, node.cutDim, float64(node.cutValue))
	rightRegion, rightOK := partitionRight(nodeRegion, node.cutDim, float64(node.cutValue))

	if leftOK {
		t.pfDescend(node.left, leftRegion, r2, out)
	}
	if rightOK {
		t.pfDescend(node.right, rightRegion, r2, out)
	}
	if leftOK && rightOK {
		t.pfPair(node.left, leftRegion, node.right, rightRegion, r2, out)
	}
}

// pfPair is the dual descent: it enumerates qualifying cross-pairs between
// two sibling subtrees without ever revisiting a pair of leaves, and never
// calls itself with both arguments the same subtree.
func (t *Tree) pfPair(a *Node, ra region.Region, b *Node, rb region.Region, r2 float64, out *[]Pair) {
	r := math.Sqrt(r2)
	if ra.IntersectWithMargin(rb, r) == region.Disjoint {
		return
	}
	if a.leaf && b.leaf {
		t.emitBetweenBuckets(a, b, r2, out)
		return
	}
	if a.leaf {
		// a has no split of its own; recurse only on b's two halves.
		leftB, leftOK := partitionLeft(rb, b.cutDim, float64(b.cutValue))
		rightB, rightOK := partitionRight(rb, b.cutDim, float64(b.cutValue))
		if leftOK {
			t.pfPair(a, ra, b.left, leftB, r2, out)
		}
		if rightOK {
			t.pfPair(a, ra, b.right, rightB, r2, out)
		}
		return
	}
	if b.leaf {
		leftA, leftOK := partitionLeft(ra, a.cutDim, float64(a.cutValue))
		rightA, rightOK := partitionRight(ra, a.cutDim, float64(a.cutValue))
		if leftOK {
			t.pfPair(a.left, leftA, b, rb, r2, out)
		}
		if rightOK {
			t.pfPair(a.right, rightA, b, rb, r2, out)
		}
		return
	}
	// Both internal: the dual descent starts from siblings and steps both
	// sides down together, so depth(a) == depth(b) and their cut axes
	// already agree (spec §4.5.3).
	leftA, leftAOK := partitionLeft(ra, a.cutDim, float64(a.cutValue))
	rightA, rightAOK := partitionRight(ra, a.cutDim, float64(a.cutValue))
	leftB, leftBOK := partitionLeft(rb, b.cutDim, float64(b.cutValue))
	rightB, rightBOK := partitionRight(rb, b.cutDim, float64(b.cutValue))

	if leftAOK && leftBOK {
		t.pfPair(a.left, leftA, b.left, leftB, r2, out)
	}
	if leftAOK && rightBOK {
		t.pfPair(a.left, leftA, b.right, rightB, r2, out)
	}
	if rightAOK && leftBOK {
		t.pfPair(a.right, rightA, b.left, leftB, r2, out)
	}
	if rightAOK && rightBOK {
		t.pfPair(a.right, rightA, b.right, rightB, r2, out)
	}
}

// partitionLeft/partitionRight classify and, where needed, split nodeRegion
// against the plane coord[dim]=v, the way PointQuery narrows node_region —
// but here there is no external query box, just the tree's own structure,
// so the Outside case is unreachable in a well-formed tree; it is still
// handled so a malformed region never silently mis-partitions.
func partitionLeft(nodeRegion region.Region, dim int, v float64) (region.Region, bool) {
	switch nodeRegion.ClassifyLeft(dim, v) {
	case region.Outside:
		return region.Region{}, false
	case region.Splits:
		return nodeRegion.SplitLeft(dim, v), true
	default: // FullyInside
		return nodeRegion, true
	}
}

func partitionRight(nodeRegion region.Region, dim int, v float64) (region.Region, bool) {
	switch nodeRegion.ClassifyRight(dim, v) {
	case region.Outside:
		return region.Region{}, false
	case region.Splits:
		return nodeRegion.SplitRight(dim, v), true
	default: // FullyInside
		return nodeRegion, true
	}
}

// emitWithinBucket enumerates pairs (i,j), s <= i < j < e, within a single
// leaf — each intra-bucket pair exactly once (spec §4.5.1).
func (t *Tree) emitWithinBucket(node *Node, r2 float64, out *[]Pair) {
	for i := node.start; i < node.end; i++ {
		pi := t.store.Coord(i)
		for j := i + 1; j < node.end; j++ {
			if d2 := squaredDistanceF32(pi, t.store.Coord(j)); d2 <= r2 {
				*out = append(*out, Pair{
					Index1:   t.store.OriginalIndex(i),
					Index2:   t.store.OriginalIndex(j),
					Distance: math.Sqrt(d2),
				})
			}
		}
	}
}

// emitBetweenBuckets enumerates the full Cartesian product between two
// disjoint leaves (spec §4.5.2).
func (t *Tree) emitBetweenBuckets(a, b *Node, r2 float64, out *[]Pair) {
	for i := a.start; i < a.end; i++ {
		pi := t.store.Coord(i)
		for j := b.start; j < b.end; j++ {
			if d2 := squaredDistanceF32(pi, t.store.Coord(j)); d2 <= r2 {
				*out = append(*out, Pair{
					Index1:   t.store.OriginalIndex(i),
					Index2:   t.store.OriginalIndex(j),
					Distance: math.Sqrt(d2),
				})
			}
		}
	}
}

func squaredDistanceF32(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
