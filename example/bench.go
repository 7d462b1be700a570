// Package example compares the tree-based and sweep-based all-pairs search
// against a naive O(n^2) scan, to sanity-check agreement and timing.
package example

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/habedi/gokdtree/kdtree"
)

// RunBenchmark builds an n-point random cloud in dim dimensions, runs
// PairFinder, SweepPairFinder, and a naive O(n^2) scan against it at radius
// r, checks the three agree, and prints timing for each.
func RunBenchmark(n, dim int, bucketSize int, r float64) error {
	overallStart := time.Now()
	points := randomPoints(n, dim)
	log.Info().Int("n", n).Int("dim", dim).Msg("generated benchmark point cloud")

	idx := kdtree.NewIndex()
	if err := idx.Init(dim, bucketSize); err != nil {
		return err
	}
	if err := kdtree.SetData(idx, points); err != nil {
		return err
	}
	fmt.Printf("built index over %d points in %v\n", n, time.Since(overallStart))

	treeStart := time.Now()
	if err := idx.AllPairs(r); err != nil {
		return err
	}
	treePairs := idx.NeighborCount()
	treeElapsed := time.Since(treeStart)
	fmt.Printf("all_pairs:       %d pairs in %v\n", treePairs, treeElapsed)

	sweepStart := time.Now()
	if err := idx.AllPairsSweep(r); err != nil {
		return err
	}
	sweepPairs := idx.NeighborCount()
	sweepElapsed := time.Since(sweepStart)
	fmt.Printf("all_pairs_sweep: %d pairs in %v\n", sweepPairs, sweepElapsed)

	if treePairs != sweepPairs {
		log.Warn().Int("tree_pairs", treePairs).Int("sweep_pairs", sweepPairs).
			Msg("PairFinder and SweepPairFinder disagree on pair count")
	}

	naiveStart := time.Now()
	naivePairs := naiveAllPairsCount(points, r)
	naiveElapsed := time.Since(naiveStart)
	fmt.Printf("naive scan:      %d pairs in %v\n", naivePairs, naiveElapsed)

	if naivePairs != treePairs {
		log.Warn().Int("naive_pairs", naivePairs).Int("tree_pairs", treePairs).
			Msg("PairFinder disagrees with the naive O(n^2) scan")
	}

	fmt.Printf("naive scan is %s slower than all_pairs\n",
		speedup(naiveElapsed.Seconds(), treeElapsed.Seconds()))
	return nil
}

func randomPoints(n, dim int) [][]float64 {
	r := rand.New(rand.NewSource(7))
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, dim)
		for j := range row {
			row[j] = r.Float64()
		}
		points[i] = row
	}
	return points
}

// naiveAllPairsCount scans every pair once, showing a progress bar since the
// O(n^2) cost makes this the slowest of the three approaches for large n.
func naiveAllPairsCount(points [][]float64, r float64) int {
	r2 := r * r
	n := len(points)
	bar := progressbar.Default(int64(n))
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for d := range points[i] {
				delta := points[i][d] - points[j][d]
				sum += delta * delta
			}
			if sum <= r2 {
				count++
			}
		}
		_ = bar.Add(1)
	}
	return count
}
