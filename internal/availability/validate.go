package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	dErrors "vigia/pkg/domain-errors"
)

// MinBlockMinutes is the shortest acceptable availability window.
const MinBlockMinutes = 120

// ValidateBlocks checks the full replacement set: every block must parse,
// last at least MinBlockMinutes, and no two blocks on the same day may
// strictly overlap. Touching endpoints (one block ending exactly when the
// next starts) are allowed. The input slice is not reordered.
func ValidateBlocks(blocks []Block) error {
	type parsed struct {
		day        string
		start, end int
		raw        Block
	}

	items := make([]parsed, 0, len(blocks))
	for _, block := range blocks {
		start, err := parseClock(block.Start)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("invalid start_time %q for %s: %v", block.Start, block.Day, err))
		}
		end, err := parseClock(block.End)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("invalid end_time %q for %s: %v", block.End, block.Day, err))
		}
		if end-start < MinBlockMinutes {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("block %s %s-%s is shorter than %d minutes", block.Day, block.Start, block.End, MinBlockMinutes))
		}
		items = append(items, parsed{day: block.Day, start: start, end: end, raw: block})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].day != items[j].day {
			return items[i].day < items[j].day
		}
		return items[i].start < items[j].start
	})

	for i := 0; i < len(items)-1; i++ {
		current, next := items[i], items[i+1]
		if current.day == next.day && current.end > next.start {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("blocks %s %s-%s and %s-%s overlap",
					current.day, current.raw.Start, current.raw.End, next.raw.Start, next.raw.End))
		}
	}
	return nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hour out of range")
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minute out of range")
	}
	return hours*60 + minutes, nil
}
