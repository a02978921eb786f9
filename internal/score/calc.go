package score

import "math"

// Fixed component weights, summing to 1.00. A change here shifts every
// coordinator's score, so treat them as part of the public contract.
const (
	weightStreak       = 0.35
	weightMotivation   = 0.20
	weightSkills       = 0.20
	weightAvailability = 0.20
	weightGeo          = 0.05
)

// Calculate computes the composite score from the five signals. Each
// component is a [0,100] base value scaled by its weight, so the rounded sum
// stays within [0,100] without explicit clamping.
func Calculate(in Inputs) (int, Breakdown) {
	streakBase := math.Min(float64(in.StreakCount)*10, 100)

	motivationBase := 0.0
	if in.MotivationDeclared {
		motivationBase = 100
	}

	skillsBase := in.AverageSkillRating / 5 * 100

	availabilityBase := 0.0
	if in.AvailabilityBlocks > 0 {
		availabilityBase = 100
	}

	geoBase := 0.0
	if in.GeoZones > 0 {
		geoBase = 100
	}

	breakdown := Breakdown{
		Streak:       streakBase * weightStreak,
		Motivation:   motivationBase * weightMotivation,
		Skills:       skillsBase * weightSkills,
		Availability: availabilityBase * weightAvailability,
		Geo:          geoBase * weightGeo,
	}

	total := breakdown.Streak + breakdown.Motivation + breakdown.Skills +
		breakdown.Availability + breakdown.Geo
	return int(math.Round(total)), breakdown
}
