package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/availability"
	dErrors "vigia/pkg/domain-errors"
)

func TestValidateBlocksAcceptsValidSchedule(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "11:00"},
		{Day: "monday", Start: "14:00", End: "18:00"},
		{Day: "tuesday", Start: "09:00", End: "12:00"},
	}
	assert.NoError(t, availability.ValidateBlocks(blocks))
}

func TestValidateBlocksAcceptsEmptySchedule(t *testing.T) {
	assert.NoError(t, availability.ValidateBlocks(nil))
}

func TestValidateBlocksRejectsShortBlock(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "10:30"},
	}
	err := availability.ValidateBlocks(blocks)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

// Exactly two hours is the minimum, not below it.
func TestValidateBlocksAcceptsExactMinimum(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "11:00"},
	}
	assert.NoError(t, availability.ValidateBlocks(blocks))
}

// Blocks that touch (one ends exactly when the next starts) do not overlap.
func TestValidateBlocksAcceptsTouchingEndpoints(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "11:00"},
		{Day: "monday", Start: "11:00", End: "13:00"},
	}
	assert.NoError(t, availability.ValidateBlocks(blocks))
}

func TestValidateBlocksRejectsOverlap(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "11:30"},
		{Day: "monday", Start: "11:00", End: "13:00"},
	}
	err := availability.ValidateBlocks(blocks)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

// Overlap detection must not depend on submission order.
func TestValidateBlocksRejectsOverlapUnsorted(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "11:00", End: "13:00"},
		{Day: "monday", Start: "09:00", End: "11:30"},
	}
	err := availability.ValidateBlocks(blocks)
	require.Error(t, err)
}

// Identical ranges on different days never conflict.
func TestValidateBlocksDifferentDaysNeverOverlap(t *testing.T) {
	blocks := []availability.Block{
		{Day: "monday", Start: "09:00", End: "13:00"},
		{Day: "tuesday", Start: "09:00", End: "13:00"},
	}
	assert.NoError(t, availability.ValidateBlocks(blocks))
}

func TestValidateBlocksRejectsMalformedTimes(t *testing.T) {
	tests := []struct {
		name  string
		block availability.Block
	}{
		{"not a time", availability.Block{Day: "monday", Start: "morning", End: "11:00"}},
		{"missing colon", availability.Block{Day: "monday", Start: "0900", End: "11:00"}},
		{"hour out of range", availability.Block{Day: "monday", Start: "25:00", End: "27:00"}},
		{"minute out of range", availability.Block{Day: "monday", Start: "09:75", End: "12:00"}},
		{"single digit hour", availability.Block{Day: "monday", Start: "9:00", End: "12:00"}},
		{"empty end", availability.Block{Day: "monday", Start: "09:00", End: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := availability.ValidateBlocks([]availability.Block{tt.block})
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
