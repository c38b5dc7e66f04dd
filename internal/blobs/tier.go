package blobs

import "fmt"

// Tier classifies a circle by size. Tier 0 is the largest circle and tier 4 the
// smallest; merging two tier-0 circles ends the session.
type Tier int

const (
	// MinTier is the largest size class.
	MinTier Tier = 0
	// MaxTier is the smallest size class. Tapping one removes it outright.
	MaxTier Tier = 4
	// TierCount is the number of size classes.
	TierCount = int(MaxTier) + 1
)

const (
	// SplitCount is the number of children produced by a split.
	SplitCount = 4
	// SplitOffset scales the child radius to get the spawn distance from the parent center.
	SplitOffset = 0.8
	// VelocityRange bounds each velocity component of a freshly split child.
	VelocityRange = 1.2
	// PopScore is awarded for removing a MaxTier circle.
	PopScore = 5
	// MergeScoreBase is multiplied by (TierCount - newTier) on every merge.
	MergeScoreBase = 10
)

var tierRadius = [TierCount]float64{80, 50, 30, 18, 10}

var tierColor = [TierCount]string{"#e74c3c", "#e67e22", "#f1c40f", "#2ecc71", "#3498db"}

// Valid reports whether t is inside [MinTier, MaxTier].
func (t Tier) Valid() bool {
	return t >= MinTier && t <= MaxTier
}

// Radius returns the radius for the tier. It panics on an out-of-range tier.
func (t Tier) Radius() float64 {
	t.mustBeValid()
	return tierRadius[t]
}

// Color returns the display colour for the tier as a #rrggbb string.
func (t Tier) Color() string {
	t.mustBeValid()
	return tierColor[t]
}

// MergeScore is the score awarded for a merge that produces a circle of tier t.
func (t Tier) MergeScore() int {
	t.mustBeValid()
	return MergeScoreBase * (TierCount - int(t))
}

func (t Tier) mustBeValid() {
	if !t.Valid() {
		panic(fmt.Sprintf("blobs: tier %d outside [%d,%d]", int(t), MinTier, MaxTier))
	}
}
