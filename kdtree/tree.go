// Package kdtree implements a static k-d tree spatial index: bulk
// median-split construction, fixed-radius point search, all-pairs
// fixed-radius neighbor search, and a sorted-axis sweep baseline.
package kdtree

import (
	"github.com/habedi/gokdtree/internal/helpers"
	"github.com/habedi/gokdtree/internal/pointstore"
	"github.com/rs/zerolog/log"
)

// Node is a k-d tree node. Leaves carry only their point range; internal
// nodes additionally carry the splitting axis/value and both children.
type Node struct {
	leaf     bool
	cutDim   int
	cutValue float32
	left     *Node
	right    *Node
	start    int
	end      int
}

// Hit is one result of a radius search: a point's original index and its
// true (post-sqrt) Euclidean distance to the query center.
type Hit struct {
	OriginalIndex int
	Distance      float64
}

// Pair is one result of an all-pairs search: two original indices within r
// of each other and their true Euclidean distance. Index1/Index2 order is
// not guaranteed; uniqueness of the unordered pair is.
type Pair struct {
	Index1, Index2 int
	Distance       float64
}

// Tree is an immutable k-d tree built once over a PointStore. Tree is safe
// for concurrent read-only queries: Search, AllPairs, and AllPairsSweep all
// return results by value and never mutate Tree state after Build returns
// (AllPairsSweep sorts its own private coordinate snapshot, not the store
// Search/AllPairs traverse — see sweep.go).
type Tree struct {
	dim         int
	bucketSize  int
	store       *pointstore.PointStore
	root        *Node
	coordsByIdx [][]float32 // row i = original index i's coordinates, fixed at Build time
}

// Build performs the bulk median-split construction of spec §4.3 over
// store, whose records are permuted into pre-order leaf ranges as a side
// effect. coordsByIndex must have one entry per original index 0..N-1 and is
// kept for AllPairsSweep, which needs point lookup by original index rather
// than by store position.
func Build(store *pointstore.PointStore, coordsByIndex [][]float32, bucketSize int) (*Tree, error) {
	t := &Tree{
		dim:         store.Dim(),
		bucketSize:  bucketSize,
		store:       store,
		coordsByIdx: coordsByIndex,
	}
	log.Info().Int("n", store.Len()).Int("dim", t.dim).Int("bucket_size", bucketSize).Msg("building k-d tree")
	t.root = t.build(0, store.Len(), 0)
	return t, nil
}

// build recursively partitions PointStore[begin,end) by median split on
// axis (depth mod k), returning the subtree root.
func (t *Tree) build(begin, end, depth int) *Node {
	if end-begin <= t.bucketSize {
		return &Node{leaf: true, start: begin, end: end}
	}
	d := depth % t.dim
	t.store.Sort(begin, end, d)

	m := helpers.CeilDiv(end-begin, 2)
	cutValue := t.store.Coord(begin + m - 1)[d]

	left := t.build(begin, begin+m, depth+1)
	right := t.build(begin+m, end, depth+1)

	log.Debug().Int("begin", begin).Int("end", end).Int("axis", d).
		Float32("cut_value", cutValue).Msg("split node")

	return &Node{
		leaf:     false,
		cutDim:   d,
		cutValue: cutValue,
		left:     left,
		right:    right,
		start:    begin,
		end:      end,
	}
}

// Dim returns the tree's dimensionality.
func (t *Tree) Dim() int {
	return t.dim
}

// Len returns the number of points indexed.
func (t *Tree) Len() int {
	return t.store.Len()
}

// squaredDistance returns the squared Euclidean distance between a float64
// center and a float32 point. Internal comparisons stay in squared space;
// sqrt is applied exactly once, by the caller, for each reported item.
func squaredDistance(center []float64, point []float32) float64 {
	var sum float64
	for i, c := range center {
		d := c - float64(point[i])
		sum += d * d
	}
	return sum
}
