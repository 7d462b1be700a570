package cmd

import (
	"fmt"
	"math/rand"

	"github.com/habedi/gokdtree/core"
	"github.com/habedi/gokdtree/kdtree"
)

// Execute builds a small synthetic point cloud and runs each of the index's
// operations against it, printing a short summary of each result.
func Execute() {
	core.LogCPUFeatures()

	const n = 500
	const dim = 3
	const bucketSize = 16
	const radius = 0.12

	points := samplePoints(n, dim)

	idx := kdtree.NewIndex()
	if err := idx.Init(dim, bucketSize); err != nil {
		fmt.Println("init failed:", err)
		return
	}
	if err := kdtree.SetData(idx, points); err != nil {
		fmt.Println("set_data failed:", err)
		return
	}

	center := make([]float64, dim)
	for i := range center {
		center[i] = 0.5
	}
	if err := kdtree.SearchCenterRadius(idx, center, radius); err != nil {
		fmt.Println("search_center_radius failed:", err)
		return
	}
	fmt.Printf("search_center_radius: %d points within %.2f of the cube center\n", idx.Count(), radius)

	if err := idx.AllPairs(radius); err != nil {
		fmt.Println("all_pairs failed:", err)
		return
	}
	fmt.Printf("all_pairs: %d pairs within %.2f of each other\n", idx.NeighborCount(), radius)

	if err := idx.AllPairsSweep(radius); err != nil {
		fmt.Println("all_pairs_sweep failed:", err)
		return
	}
	fmt.Printf("all_pairs_sweep: %d pairs within %.2f of each other\n", idx.NeighborCount(), radius)
}

func samplePoints(n, dim int) [][]float64 {
	r := rand.New(rand.NewSource(1))
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
