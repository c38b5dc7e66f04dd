package blobs

import "testing"

func TestTierTable(t *testing.T) {
	want := []float64{80, 50, 30, 18, 10}
	for i, r := range want {
		tier := Tier(i)
		if got := tier.Radius(); got != r {
			t.Fatalf("tier %d radius = %v, expected %v", i, got, r)
		}
		if tier.Color() == "" {
			t.Fatalf("tier %d has no color", i)
		}
	}
	if got := Tier(3).MergeScore(); got != 20 {
		t.Fatalf("merge score into tier 3 = %d, expected 20", got)
	}
	if got := MinTier.MergeScore(); got != 50 {
		t.Fatalf("merge score into tier 0 = %d, expected 50", got)
	}
}

func TestTierOutOfRangePanics(t *testing.T) {
	for _, tier := range []Tier{-1, 5, 42} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for tier %d", tier)
				}
			}()
			_ = tier.Radius()
		}()
	}
}
