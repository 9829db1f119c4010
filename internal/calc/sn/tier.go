package sn

type Tier string

const (
	TierLight    Tier = "light"
	TierModerate Tier = "moderate"
	TierHeavy    Tier = "heavy"
)

// tiers is ordered by ascending lower bound; a total belongs to the last
// tier whose bound it reaches, so boundary values go to the higher tier.
var tiers = []struct {
	lower  float64
	tier   Tier
	advice string
}{
	{0, TierLight, "Low SN - suited to light traffic."},
	{3.0, TierModerate, "Moderate SN - suited to moderate traffic."},
	{5.0, TierHeavy, "High SN - suited to heavy traffic."},
}

// Classify maps a structural number onto its traffic tier.
func Classify(total float64) Tier {
	t := tiers[0].tier
	for _, r := range tiers[1:] {
		if total < r.lower {
			break
		}
		t = r.tier
	}
	return t
}

func (t Tier) Advice() string {
	for _, r := range tiers {
		if r.tier == t {
			return r.advice
		}
	}
	return ""
}

// Rank orders tiers from 0 (light) upwards; -1 for an unknown tier.
func (t Tier) Rank() int {
	for i, r := range tiers {
		if r.tier == t {
			return i
		}
	}
	return -1
}
