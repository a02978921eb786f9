package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vigia/internal/score"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		in   score.Inputs
		want int
	}{
		{
			name: "full marks on every signal",
			in: score.Inputs{
				StreakCount:        10,
				MotivationDeclared: true,
				AverageSkillRating: 5,
				AvailabilityBlocks: 3,
				GeoZones:           2,
			},
			want: 100,
		},
		{
			name: "empty profile scores zero",
			in:   score.Inputs{},
			want: 0,
		},
		{
			name: "streak capped at ten walks",
			in:   score.Inputs{StreakCount: 50},
			want: 35,
		},
		{
			name: "streak below cap scales linearly",
			in:   score.Inputs{StreakCount: 4},
			want: 14,
		},
		{
			name: "motivation alone",
			in:   score.Inputs{MotivationDeclared: true},
			want: 20,
		},
		{
			name: "mid skill rating",
			in:   score.Inputs{AverageSkillRating: 2.5},
			want: 10,
		},
		{
			name: "availability and geo are presence signals",
			in:   score.Inputs{AvailabilityBlocks: 12, GeoZones: 9},
			want: 25,
		},
		{
			name: "fractional sum rounds to nearest",
			in:   score.Inputs{StreakCount: 1, AverageSkillRating: 3},
			want: 16, // 3.5 + 12 = 15.5 rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, breakdown := score.Calculate(tt.in)
			assert.Equal(t, tt.want, total)

			sum := breakdown.Streak + breakdown.Motivation + breakdown.Skills +
				breakdown.Availability + breakdown.Geo
			assert.InDelta(t, sum, float64(total), 0.5)
		})
	}
}

func TestCalculateBreakdownComponents(t *testing.T) {
	_, breakdown := score.Calculate(score.Inputs{
		StreakCount:        10,
		MotivationDeclared: true,
		AverageSkillRating: 5,
		AvailabilityBlocks: 1,
		GeoZones:           1,
	})

	assert.Equal(t, 35.0, breakdown.Streak)
	assert.Equal(t, 20.0, breakdown.Motivation)
	assert.Equal(t, 20.0, breakdown.Skills)
	assert.Equal(t, 20.0, breakdown.Availability)
	assert.Equal(t, 5.0, breakdown.Geo)
}

func TestCalculateNeverExceedsBounds(t *testing.T) {
	extremes := []score.Inputs{
		{StreakCount: 1 << 20, MotivationDeclared: true, AverageSkillRating: 5, AvailabilityBlocks: 1 << 20, GeoZones: 1 << 20},
		{},
	}
	for _, in := range extremes {
		total, _ := score.Calculate(in)
		assert.GreaterOrEqual(t, total, 0)
		assert.LessOrEqual(t, total, 100)
	}
}
