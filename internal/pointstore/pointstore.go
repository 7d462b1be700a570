// Package pointstore owns the contiguous coordinate buffer backing a k-d
// tree and the permutable array of (original index, coordinate) records
// that the tree partitions in place.
package pointstore

import "sort"

// record pairs a caller-assigned original index with a view into the
// store's coordinate buffer. coord is a slice into the store's backing
// array, never a copy, so permuting records never touches coordinate data.
type record struct {
	originalIndex int
	coord         []float32
}

// PointStore holds N point records over a k-dimensional coordinate buffer.
// Its record order is mutated in place by Sort (called from Tree.Build; the
// sweep baseline sorts its own snapshot instead) but that order is never
// observed by the caller —
// original indices travel with each record through every permutation.
type PointStore struct {
	dim     int
	records []record
}

// New returns an empty store for dim-dimensional points.
func New(dim int) *PointStore {
	return &PointStore{dim: dim}
}

// Dim returns the store's dimensionality.
func (s *PointStore) Dim() int {
	return s.dim
}

// Len returns the number of points currently in the store.
func (s *PointStore) Len() int {
	return len(s.records)
}

// Add appends a point record. coord must have length Dim(); the store keeps
// the slice itself, not a copy, so the caller's buffer must outlive the
// store.
func (s *PointStore) Add(originalIndex int, coord []float32) {
	s.records = append(s.records, record{originalIndex: originalIndex, coord: coord})
}

// OriginalIndex returns the original index of the point currently at
// position i.
func (s *PointStore) OriginalIndex(i int) int {
	return s.records[i].originalIndex
}

// Coord returns the coordinate slice of the point currently at position i.
func (s *PointStore) Coord(i int) []float32 {
	return s.records[i].coord
}

// Sort performs an in-place sort of the records in [lo, hi) by coord[axis]
// ascending. Tie-breaks are unspecified; Tree.Build's median-index rule
// tolerates any tie-break applied consistently to the sorted range.
func (s *PointStore) Sort(lo, hi, axis int) {
	sub := s.records[lo:hi]
	sort.Slice(sub, func(i, j int) bool {
		return sub[i].coord[axis] < sub[j].coord[axis]
	})
}
