package region

import "testing"

func TestNewUnboundedEnclosesEverything(t *testing.T) {
	r := NewUnbounded(3)
	points := [][]float64{
		{0, 0, 0},
		{1e5, -1e5, 999},
		{-999999, 999999, 0},
	}
	for _, p := range points {
		if !r.Encloses(p) {
			t.Errorf("unbounded region should enclose %v", p)
		}
	}
}

func TestEncloses(t *testing.T) {
	r := New([]float64{0, 0}, []float64{1, 1})
	cases := []struct {
		point []float64
		want  bool
	}{
		{[]float64{0.5, 0.5}, true},
		{[]float64{0, 0}, true},
		{[]float64{1, 1}, true},
		{[]float64{1.1, 0.5}, false},
		{[]float64{0.5, -0.1}, false},
	}
	for _, tt := range cases {
		if got := r.Encloses(tt.point); got != tt.want {
			t.Errorf("Encloses(%v) = %v; want %v", tt.point, got, tt.want)
		}
	}
}

func TestSplitLeftRight(t *testing.T) {
	r := New([]float64{0, 0}, []float64{10, 10})
	left := r.SplitLeft(0, 4)
	if left.Hi[0] != 4 || left.Lo[0] != 0 {
		t.Errorf("SplitLeft(0, 4) = %+v; want Hi[0]=4, Lo[0]=0", left)
	}
	// original region must be unmodified
	if r.Hi[0] != 10 {
		t.Errorf("SplitLeft mutated the receiver: Hi[0] = %v", r.Hi[0])
	}

	right := r.SplitRight(1, 3)
	if right.Lo[1] != 3 || right.Hi[1] != 10 {
		t.Errorf("SplitRight(1, 3) = %+v; want Lo[1]=3, Hi[1]=10", right)
	}
	if r.Lo[1] != 0 {
		t.Errorf("SplitRight mutated the receiver: Lo[1] = %v", r.Lo[1])
	}
}

func TestClassifyLeft(t *testing.T) {
	r := New([]float64{0}, []float64{10})
	cases := []struct {
		v    float64
		want Relation
	}{
		{-1, Outside},
		{0, Splits},
		{5, Splits},
		{9.999, Splits},
		{10, FullyInside},
		{20, FullyInside},
	}
	for _, tt := range cases {
		if got := r.ClassifyLeft(0, tt.v); got != tt.want {
			t.Errorf("ClassifyLeft(0, %v) = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestClassifyRight(t *testing.T) {
	r := New([]float64{0}, []float64{10})
	cases := []struct {
		v    float64
		want Relation
	}{
		{-1, FullyInside},
		{0, FullyInside},
		{0.001, Splits},
		{10, Splits},
		{10.001, Outside},
	}
	for _, tt := range cases {
		if got := r.ClassifyRight(0, tt.v); got != tt.want {
			t.Errorf("ClassifyRight(0, %v) = %v; want %v", tt.v, got, tt.want)
		}
	}
}

// When the cut plane lies entirely outside the region's extent, exactly one
// side must be prunable (Outside) and the other must recurse unchanged
// (FullyInside) — never both, and never neither.
func TestClassifyLeftRightPartitionCutPlane(t *testing.T) {
	r := New([]float64{0}, []float64{10})
	cases := []float64{-1, 11}
	for _, v := range cases {
		left := r.ClassifyLeft(0, v)
		right := r.ClassifyRight(0, v)
		leftOutside := left == Outside
		rightOutside := right == Outside
		if leftOutside == rightOutside {
			t.Errorf("v=%v: exactly one side must be Outside; left=%v right=%v", v, left, right)
		}
	}
}

func TestIntersectWithMarginDisjoint(t *testing.T) {
	a := New([]float64{0, 0}, []float64{1, 1})
	b := New([]float64{5, 5}, []float64{6, 6})
	if got := a.IntersectWithMargin(b, 0); got != Disjoint {
		t.Errorf("IntersectWithMargin(margin=0) = %v; want Disjoint", got)
	}
	// A margin large enough to bridge the gap turns disjoint boxes into an overlap.
	if got := a.IntersectWithMargin(b, 10); got != Overlapping {
		t.Errorf("IntersectWithMargin(margin=10) = %v; want Overlapping", got)
	}
}

func TestIntersectWithMarginContained(t *testing.T) {
	outer := New([]float64{0, 0}, []float64{10, 10})
	inner := New([]float64{2, 2}, []float64{4, 4})
	if got := inner.IntersectWithMargin(outer, 0); got != Contained {
		t.Errorf("inner.IntersectWithMargin(outer) = %v; want Contained", got)
	}
	if got := outer.IntersectWithMargin(inner, 0); got != Overlapping {
		t.Errorf("outer.IntersectWithMargin(inner) = %v; want Overlapping", got)
	}
}

func TestIntersectWithMarginOverlapping(t *testing.T) {
	a := New([]float64{0, 0}, []float64{5, 5})
	b := New([]float64{3, 3}, []float64{8, 8})
	if got := a.IntersectWithMargin(b, 0); got != Overlapping {
		t.Errorf("IntersectWithMargin = %v; want Overlapping", got)
	}
}
