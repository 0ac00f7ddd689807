package domain

import (
	"testing"
	"time"
)

func TestTreeQualityValid(t *testing.T) {
	for _, q := range []TreeQuality{QualityWithered, QualityNormal, QualityGolden, QualityRainbow} {
		if !q.Valid() {
			t.Fatalf("%s should be valid", q)
		}
	}
	if TreeQuality("legendary").Valid() {
		t.Fatal("unknown quality should be invalid")
	}
	if TreeQuality("").Valid() {
		t.Fatal("empty quality should be invalid")
	}
}

func TestTimeLeft(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tree := &PlantedTree{
		StartTime: now.Add(-100 * time.Second),
		EndTime:   now.Add(200 * time.Second),
	}

	if got := tree.TimeLeft(now); got != 200 {
		t.Fatalf("TimeLeft = %d; want 200", got)
	}
	if tree.Ready(now) {
		t.Fatal("tree with time left should not be ready")
	}

	if got := tree.TimeLeft(now.Add(300 * time.Second)); got != 0 {
		t.Fatalf("TimeLeft past end = %d; want 0", got)
	}
	if !tree.Ready(now.Add(200 * time.Second)) {
		t.Fatal("tree at end time should be ready")
	}
	if !tree.Ready(now.Add(time.Hour)) {
		t.Fatal("overdue tree should be ready")
	}
}

func TestReadySubSecondWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tree := &PlantedTree{
		StartTime: now.Add(-300 * time.Second),
		EndTime:   now.Add(500 * time.Millisecond),
	}

	// the last fractional second floors to 0 for display but the tree is
	// not sellable yet
	if got := tree.TimeLeft(now); got != 0 {
		t.Fatalf("TimeLeft = %d; want 0", got)
	}
	if tree.Ready(now) {
		t.Fatal("tree with endTime in the future should not be ready")
	}

	if !tree.Ready(now.Add(500 * time.Millisecond)) {
		t.Fatal("tree at exactly endTime should be ready")
	}
	if !tree.Ready(now.Add(501 * time.Millisecond)) {
		t.Fatal("tree past endTime should be ready")
	}
}
