package kdtree

import (
	"sync"

	"github.com/habedi/gokdtree/core"
	"github.com/habedi/gokdtree/internal/pointstore"
	"github.com/rs/zerolog/log"
)

// Neighbor is one record of the neighbor-list accessor: an unordered pair of
// original indices and their true Euclidean distance.
type Neighbor struct {
	Index1, Index2 int
	Radius         float64
}

// Index is the mutable, concurrency-safe front door described in spec §6:
// Init installs a fresh tree, SetData builds it from a caller's point
// buffer, and the three query operations populate shared result buffers
// read back through the accessor methods. Unlike Tree's query methods
// (which return results by value and need no locking), Index guards its
// last-result buffers with a RWMutex because accessors and queries share
// them across calls.
type Index struct {
	mu sync.RWMutex

	dim        int
	bucketSize int
	tree       *Tree

	hits      []Hit
	neighbors []Neighbor
}

// NewIndex returns an uninitialized Index; SetData must be called before any
// query.
func NewIndex() *Index {
	return &Index{}
}

// Init installs a fresh, empty tree configuration (spec §6.1). Any data and
// results from a prior SetData are discarded.
func (idx *Index) Init(dim, bucketSize int) error {
	if dim <= 0 {
		return core.NewError(core.InvalidArgument, "dim must be positive, got %d", dim)
	}
	if bucketSize <= 0 {
		return core.NewError(core.InvalidArgument, "bucket_size must be positive, got %d", bucketSize)
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.dim = dim
	idx.bucketSize = bucketSize
	idx.tree = nil
	idx.hits = nil
	idx.neighbors = nil
	log.Info().Int("dim", dim).Int("bucket_size", bucketSize).Msg("index: init")
	return nil
}

// SetData coerces points into the tree's internal float32 coordinate
// buffer and builds a fresh tree over them (spec §6.2). It invalidates any
// results from a prior query.
func SetData[T Numeric](idx *Index, points [][]T) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dim == 0 {
		return core.NewError(core.Uninitialized, "Init must be called before SetData")
	}
	buf, rows, err := toFloat32Buffer(points, idx.dim)
	_ = buf // buf backs rows; kept alive by the rows' slices, not referenced directly
	if err != nil {
		return err
	}

	store := pointstore.New(idx.dim)
	for i, row := range rows {
		store.Add(i, row)
	}
	tr, err := Build(store, rows, idx.bucketSize)
	if err != nil {
		return err
	}

	idx.tree = tr
	idx.hits = nil
	idx.neighbors = nil
	return nil
}

// SearchCenterRadius runs PointQuery and replaces the last radius result
// (spec §6.3). The center coordinates accept the same Numeric element
// types as SetData (coerced through toFloat64, not toFloat32Buffer, since
// the query center is never stored alongside the tree's points). On error,
// the prior result buffer is rolled back to empty rather than left
// partially populated (spec §7).
func SearchCenterRadius[T Numeric](idx *Index, center []T, r float64) error {
	return idx.searchCenterRadius(toFloat64(center), r)
}

func (idx *Index) searchCenterRadius(center []float64, r float64) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.tree == nil {
		idx.hits = nil
		return core.NewError(core.Uninitialized, "SetData must be called before SearchCenterRadius")
	}
	hits, err := idx.tree.Search(center, r)
	if err != nil {
		idx.hits = nil
		return err
	}
	idx.hits = hits
	return nil
}

// AllPairs runs PairFinder and replaces the last neighbor result (spec
// §6.4).
func (idx *Index) AllPairs(r float64) error {
	return idx.runPairs(r, (*Tree).AllPairs)
}

// AllPairsSweep runs SweepPairFinder and replaces the last neighbor result
// (spec §6.5).
func (idx *Index) AllPairsSweep(r float64) error {
	return idx.runPairs(r, (*Tree).AllPairsSweep)
}

func (idx *Index) runPairs(r float64, run func(*Tree, float64) ([]Pair, error)) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.tree == nil {
		idx.neighbors = nil
		return core.NewError(core.Uninitialized, "SetData must be called before an all-pairs search")
	}
	pairs, err := run(idx.tree, r)
	if err != nil {
		idx.neighbors = nil
		return err
	}
	neighbors := make([]Neighbor, len(pairs))
	for i, p := range pairs {
		neighbors[i] = Neighbor{Index1: p.Index1, Index2: p.Index2, Radius: p.Distance}
	}
	idx.neighbors = neighbors
	return nil
}

// Count returns the number of hits from the last SearchCenterRadius call.
func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.hits)
}

// NeighborCount returns the number of records from the last all-pairs call.
func (idx *Index) NeighborCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.neighbors)
}

// CopyIndices writes the original indices of the last SearchCenterRadius
// result into out, which must have length >= Count().
func (idx *Index) CopyIndices(out []int) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if len(out) < len(idx.hits) {
		return core.NewError(core.InvalidArgument, "out has length %d, need at least %d", len(out), len(idx.hits))
	}
	for i, h := range idx.hits {
		out[i] = h.OriginalIndex
	}
	return nil
}

// CopyRadii writes the distances of the last SearchCenterRadius result into
// out, which must have length >= Count().
func (idx *Index) CopyRadii(out []float64) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if len(out) < len(idx.hits) {
		return core.NewError(core.InvalidArgument, "out has length %d, need at least %d", len(out), len(idx.hits))
	}
	for i, h := range idx.hits {
		out[i] = h.Distance
	}
	return nil
}

// Neighbors returns a copy of the last all-pairs result.
func (idx *Index) Neighbors() []Neighbor {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]Neighbor, len(idx.neighbors))
	copy(out, idx.neighbors)
	return out
}
