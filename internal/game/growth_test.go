package game

import (
	"testing"
	"time"
)

func TestGrowDuration(t *testing.T) {
	cases := []struct {
		base    int64
		upgrade bool
		want    time.Duration
	}{
		{300, false, 300 * time.Second},
		{300, true, 270 * time.Second},
		{1200, false, 1200 * time.Second},
		{1200, true, 1080 * time.Second},
		{5, true, 4 * time.Second}, // 4.5 rounds down
	}

	for _, tc := range cases {
		if got := GrowDuration(tc.base, tc.upgrade); got != tc.want {
			t.Fatalf("GrowDuration(%d, %v) = %s; want %s", tc.base, tc.upgrade, got, tc.want)
		}
	}
}

func TestReductionAllowed(t *testing.T) {
	cases := []struct {
		clicks    int
		reduction int64
		want      bool
	}{
		{1, 10, true},
		{1, 11, false},
		{5, 50, true},
		{5, 51, false},
		{1000, 10000, true},
	}

	for _, tc := range cases {
		if got := ReductionAllowed(tc.clicks, tc.reduction); got != tc.want {
			t.Fatalf("ReductionAllowed(%d, %d) = %v; want %v", tc.clicks, tc.reduction, got, tc.want)
		}
	}
}

func TestClampReduction(t *testing.T) {
	cases := []struct {
		reduction, left, want int64
	}{
		{12, 8, 8},
		{8, 12, 8},
		{10, 10, 10},
		{5, 0, 0},
	}

	for _, tc := range cases {
		if got := ClampReduction(tc.reduction, tc.left); got != tc.want {
			t.Fatalf("ClampReduction(%d, %d) = %d; want %d", tc.reduction, tc.left, got, tc.want)
		}
	}
}
