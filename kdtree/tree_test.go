package kdtree

import (
	"testing"

	"github.com/habedi/gokdtree/internal/pointstore"
)

func TestBuildDimAndLen(t *testing.T) {
	pts := cubeCorners()
	tr := buildTestTree(t, pts, 2)
	if tr.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", tr.Dim())
	}
	if tr.Len() != len(pts) {
		t.Errorf("Len() = %d, want %d", tr.Len(), len(pts))
	}
}

func TestBuildEmptyPointSet(t *testing.T) {
	store := pointstore.New(3)
	tr, err := Build(store, nil, 4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	hits, err := tr.Search([]float64{0, 0, 0}, 1.0)
	if err != nil {
		t.Fatalf("Search on empty tree: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("Search on empty tree returned %d hits, want 0", len(hits))
	}
}

func TestBuildLeafRangesPartitionAllPoints(t *testing.T) {
	pts := cubeCorners()
	tr := buildTestTree(t, pts, 1)

	seen := map[int]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.leaf {
			for i := n.start; i < n.end; i++ {
				idx := tr.store.OriginalIndex(i)
				if seen[idx] {
					t.Fatalf("original index %d covered by more than one leaf range", idx)
				}
				seen[idx] = true
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(tr.root)

	if len(seen) != len(pts) {
		t.Fatalf("leaf ranges cover %d of %d original indices", len(seen), len(pts))
	}
}

func TestSquaredDistance(t *testing.T) {
	d2 := squaredDistance([]float64{0, 0, 0}, []float32{3, 4, 0})
	if d2 != 25 {
		t.Errorf("squaredDistance = %v, want 25", d2)
	}
}
