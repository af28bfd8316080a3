package bowling

import (
	"fmt"
	"strconv"
	"strings"
)

// Marks renders the frame's ball slots in scoresheet notation: X for a strike,
// / for a spare, - for a miss, and an empty string for an unset slot.
func (s FrameSnapshot) Marks() []string {
	marks := make([]string, len(s.Scores))
	// pins standing before the current ball; the rack is fresh after a strike
	// or spare
	standing, fresh := TotalPins, true
	for i, pins := range s.Scores {
		switch {
		case pins == Unset:
			continue
		case pins == TotalPins && fresh:
			marks[i] = "X"
		case pins == standing && pins > 0:
			marks[i] = "/"
		case pins == 0:
			marks[i] = "-"
		default:
			marks[i] = strconv.Itoa(pins)
		}

		standing, fresh = nextRack(standing, pins)
	}
	return marks
}

// PinsStanding returns how many pins the next ball in the frame faces and
// whether they are a freshly set rack
func (s FrameSnapshot) PinsStanding() (int, bool) {
	standing, fresh := TotalPins, true
	for _, pins := range s.Scores {
		if pins == Unset {
			break
		}
		standing, fresh = nextRack(standing, pins)
	}
	return standing, fresh
}

// nextRack applies a ball to the pins standing; clearing them resets the rack
func nextRack(standing, pins int) (int, bool) {
	if pins == standing {
		return TotalPins, true
	}
	return standing - pins, false
}

// ParseRolls parses a sequence of rolls separated by spaces or commas. Each
// token is a pin count (0-10), X for a strike, - for a miss, or / for a spare,
// which counts the pins left by the previous roll.
//
// Spare marks may be attached to the preceding roll ("7/"), and whole frames
// may be written without separators ("XX", "9-", "X7/") as long as the token
// holds an X, / or -. A token of digits alone is one pin count, so "11" is an
// error rather than two rolls of 1.
func ParseRolls(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '|'
	})

	var rolls []int
	for _, field := range fields {
		if n, err := strconv.Atoi(field); err == nil {
			if err := validatePins(n, TotalPins); err != nil {
				return nil, err
			}
			rolls = append(rolls, n)
			continue
		}

		for _, r := range strings.ToUpper(field) {
			switch {
			case r == 'X':
				rolls = append(rolls, TotalPins)
			case r == '-':
				rolls = append(rolls, 0)
			case r == '/':
				if len(rolls) == 0 || rolls[len(rolls)-1] >= TotalPins {
					return nil, fmt.Errorf("%w: spare in %q does not follow an open roll", ErrRule, field)
				}
				rolls = append(rolls, TotalPins-rolls[len(rolls)-1])
			case r >= '0' && r <= '9':
				rolls = append(rolls, int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: unrecognised roll %q", ErrValidation, string(r))
			}
		}
	}
	return rolls, nil
}
