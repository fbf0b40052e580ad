package widget

import (
	"slices"
	"testing"
)

func TestLayoutLinearly(t *testing.T) {
	tests := []struct {
		name      string
		available int
		sep       int
		demands   []Demand
		weights   []float64
		want      []int
	}{
		{
			name:      "exact demands that fit",
			available: 4,
			demands:   []Demand{Exact(1), Exact(2)},
			weights:   []float64{1, 1},
			want:      []int{1, 2},
		},
		{
			name:      "exact demands over budget cut proportionally",
			available: 4,
			demands:   []Demand{Exact(5), Exact(3)},
			weights:   []float64{1, 1},
			want:      []int{3, 1},
		},
		{
			name:      "shortfall remainder goes to earliest child",
			available: 5,
			demands:   []Demand{Exact(5), Exact(3)},
			weights:   []float64{1, 1},
			want:      []int{4, 1},
		},
		{
			name:      "surplus split by weight",
			available: 10,
			demands:   []Demand{AtLeast(3), AtLeast(5)},
			weights:   []float64{2, 3},
			want:      []int{4, 6},
		},
		{
			name:      "weights ignored under shortfall",
			available: 4,
			demands:   []Demand{AtLeast(3), AtLeast(5)},
			weights:   []float64{0, 1},
			want:      []int{2, 2},
		},
		{
			name:      "proportional cut keeps both above zero",
			available: 6,
			demands:   []Demand{AtLeast(3), AtLeast(5)},
			weights:   []float64{0, 1},
			want:      []int{3, 3},
		},
		{
			name:      "bounded range children share by weight",
			available: 10,
			demands:   []Demand{FromTo(1, 10), FromTo(1, 10)},
			weights:   []float64{3, 2},
			want:      []int{6, 4},
		},
		{
			name:      "three kinds of demand under shortfall",
			available: 10,
			demands:   []Demand{FromTo(5, 6), Exact(5), AtLeast(5)},
			weights:   []float64{1, 1, 1},
			want:      []int{4, 3, 3},
		},
		{
			name:      "separator width reduces the budget",
			available: 82,
			sep:       1,
			demands:   []Demand{AtLeast(4), AtLeast(51)},
			weights:   []float64{1, 1},
			want:      []int{17, 64},
		},
		{
			name:      "shortfall favors larger minimums",
			available: 10,
			demands:   []Demand{FromTo(6, 6), Exact(4), AtLeast(2)},
			weights:   []float64{1, 1, 1},
			want:      []int{6, 3, 1},
		},
		{
			name:      "equal minimums cut evenly with front remainder",
			available: 20,
			demands:   []Demand{AtLeast(10), AtLeast(10), AtLeast(10)},
			weights:   []float64{1, 1, 1},
			want:      []int{7, 7, 6},
		},
		{
			name:      "unequal minimums keep their ratio",
			available: 20,
			demands:   []Demand{AtLeast(10), AtLeast(30)},
			weights:   []float64{1, 1},
			want:      []int{5, 15},
		},
		{
			name:      "pure weights split exactly",
			available: 30,
			demands:   []Demand{AtLeast(0), AtLeast(0)},
			weights:   []float64{1, 2},
			want:      []int{10, 20},
		},
		{
			name:      "zero weight pins a child to its minimum",
			available: 10,
			demands:   []Demand{AtLeast(2), AtLeast(2)},
			weights:   []float64{0, 1},
			want:      []int{2, 8},
		},
		{
			name:      "all weights zero leaves the surplus unused",
			available: 10,
			demands:   []Demand{AtLeast(2), AtLeast(2)},
			weights:   []float64{0, 0},
			want:      []int{2, 2},
		},
		{
			name:      "capped child hands its share onward",
			available: 10,
			demands:   []Demand{FromTo(0, 3), AtLeast(0)},
			weights:   []float64{1, 1},
			want:      []int{3, 7},
		},
		{
			name:      "all children capped below the budget",
			available: 7,
			sep:       1,
			demands:   []Demand{Exact(2), Exact(2)},
			weights:   []float64{1, 1},
			want:      []int{2, 2},
		},
		{
			name:      "separators alone exceed the budget",
			available: 1,
			sep:       2,
			demands:   []Demand{Exact(1), Exact(1), Exact(1)},
			weights:   []float64{1, 1, 1},
			want:      []int{0, 0, 0},
		},
		{
			name:      "no space at all",
			available: 0,
			demands:   []Demand{AtLeast(5)},
			weights:   []float64{1},
			want:      []int{0},
		},
		{
			name:      "single child cut to the budget",
			available: 3,
			demands:   []Demand{AtLeast(5)},
			weights:   []float64{1},
			want:      []int{3},
		},
		{
			name:      "missing weights default to one",
			available: 10,
			demands:   []Demand{AtLeast(1), AtLeast(1)},
			weights:   nil,
			want:      []int{5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutLinearly(tt.available, tt.sep, tt.demands, tt.weights)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLayoutLinearlyEmpty(t *testing.T) {
	got := LayoutLinearly(10, 1, nil, nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestLayoutLinearlyDeterministic(t *testing.T) {
	demands := []Demand{FromTo(2, 9), AtLeast(1), Exact(4), FromTo(0, 3)}
	weights := []float64{1, 2, 1, 3}
	first := LayoutLinearly(23, 1, demands, weights)
	for i := 0; i < 50; i++ {
		again := LayoutLinearly(23, 1, demands, weights)
		if !slices.Equal(first, again) {
			t.Fatalf("run %d: expected %v, got %v", i, first, again)
		}
	}
}

func TestLayoutLinearlyFillsWhenAbsorberExists(t *testing.T) {
	for available := 0; available <= 60; available++ {
		demands := []Demand{Exact(3), AtLeast(2), FromTo(1, 5)}
		weights := []float64{1, 1, 1}
		sizes := LayoutLinearly(available, 1, demands, weights)
		budget := available - 2
		if budget < 0 {
			budget = 0
		}
		total := 0
		for i, s := range sizes {
			total += s
			if s < 0 {
				t.Fatalf("available %d: negative size %d at %d", available, s, i)
			}
		}
		if total > budget {
			t.Errorf("available %d: sizes %v exceed budget %d", available, sizes, budget)
		}
		// One child is unbounded, so every cell must be used once
		// the minimums fit.
		if budget >= 6 && total != budget {
			t.Errorf("available %d: sizes %v leave %d unused", available, sizes, budget-total)
		}
	}
}

func TestLayoutLinearlyRespectsBounds(t *testing.T) {
	demands := []Demand{FromTo(2, 4), FromTo(1, 3), FromTo(5, 5)}
	weights := []float64{1, 2, 1}
	for available := 8; available <= 40; available++ {
		sizes := LayoutLinearly(available, 0, demands, weights)
		for i, s := range sizes {
			if s < demands[i].Min || s > demands[i].Max {
				t.Errorf("available %d: child %d got %d outside [%d,%d]",
					available, i, s, demands[i].Min, demands[i].Max)
			}
		}
	}
}

func TestLayoutLinearlyShortfallSumsToBudget(t *testing.T) {
	demands := []Demand{Exact(7), AtLeast(13), FromTo(5, 9)}
	weights := []float64{1, 1, 1}
	for available := 1; available < 25; available++ {
		sizes := LayoutLinearly(available, 0, demands, weights)
		total := 0
		for _, s := range sizes {
			total += s
		}
		if total != available {
			t.Errorf("available %d: sizes %v sum to %d", available, sizes, total)
		}
	}
}
