package bowling

import "fmt"

const (
	// TotalPins is the number of pins in a rack
	TotalPins = 10

	// MaxBonusPoints is the most bonus a regular frame can carry (two strikes)
	MaxBonusPoints = 20

	// Unset marks a ball slot that has not been bowled
	Unset = -1

	// RegularFrameBalls is the number of ball slots in frames one to nine
	RegularFrameBalls = 2

	// LastFrameBalls is the number of ball slots in the tenth frame
	LastFrameBalls = 3
)

// Frame is one of the ten scoring units of a game. The only implementations
// are *RegularFrame and *LastFrame.
type Frame interface {
	// RecordFirstBall records the first ball of the frame
	RecordFirstBall(pins int) error
	// RecordSecondBall records the second ball of the frame
	RecordSecondBall(pins int) error
	// AddBonusPoints credits a later ball to the frame. For the last frame
	// this records the next fill ball.
	AddBonusPoints(pins int) error

	Scores() []int
	Total() int
	IsStrike() bool
	IsSpare() bool
	IsComplete() bool

	// Subscribe registers a listener fired after every successful mutation
	Subscribe(l Listener)
	Snapshot() FrameSnapshot

	sealed()
}

// FrameSnapshot is an immutable copy of a frame handed to presentation code
type FrameSnapshot struct {
	Scores []int
	Total  int
	Strike bool
	Spare  bool
}

// Started reports whether any ball has been recorded in the frame
func (s FrameSnapshot) Started() bool {
	return len(s.Scores) > 0 && s.Scores[0] != Unset
}

func validatePins(pins, max int) error {
	if pins < 0 || pins > max {
		return fmt.Errorf("%w: %d is not between 0 and %d", ErrValidation, pins, max)
	}
	return nil
}

func unsetSlots(n int) []int {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = Unset
	}
	return slots
}

// RegularFrame is one of frames one to nine
type RegularFrame struct {
	balls      [RegularFrameBalls]int
	total      int
	strike     bool
	spare      bool
	bonus      int
	bonusBalls int
	listeners  listeners
}

// NewRegularFrame creates an empty regular frame
func NewRegularFrame() *RegularFrame {
	return &RegularFrame{
		balls: [RegularFrameBalls]int{Unset, Unset},
		total: Unset,
	}
}

func (f *RegularFrame) sealed() {}

// RecordFirstBall records the first ball and marks a strike on ten pins
func (f *RegularFrame) RecordFirstBall(pins int) error {
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	if f.balls[0] != Unset {
		return fmt.Errorf("%w: first ball already recorded", ErrRule)
	}

	f.balls[0] = pins
	f.strike = pins == TotalPins
	f.total = pins
	f.listeners.notify()
	return nil
}

// RecordSecondBall records the second ball and marks a spare when the two
// balls clear the rack
func (f *RegularFrame) RecordSecondBall(pins int) error {
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	switch {
	case f.balls[0] == Unset:
		return fmt.Errorf("%w: first ball not recorded", ErrRule)
	case f.strike:
		return fmt.Errorf("%w: cannot record a second ball on a strike", ErrRule)
	case f.balls[1] != Unset:
		return fmt.Errorf("%w: second ball already recorded", ErrRule)
	case f.balls[0]+pins > TotalPins:
		return fmt.Errorf("%w: frame cannot exceed %d pins (%d + %d)", ErrRule, TotalPins, f.balls[0], pins)
	}

	f.balls[1] = pins
	f.spare = f.balls[0]+pins == TotalPins
	f.total = f.balls[0] + pins
	f.listeners.notify()
	return nil
}

// AddBonusPoints credits a later ball to a strike (twice) or spare (once)
func (f *RegularFrame) AddBonusPoints(pins int) error {
	if err := validatePins(pins, MaxBonusPoints); err != nil {
		return err
	}
	if !f.strike && !f.spare {
		return fmt.Errorf("%w: bonus points need a strike or spare", ErrRule)
	}
	if f.bonusBalls >= f.bonusBallsAllowed() {
		return fmt.Errorf("%w: frame already holds %d bonus ball(s)", ErrRule, f.bonusBalls)
	}

	f.bonus += pins
	f.bonusBalls++
	f.total = f.pinfall() + f.bonus
	f.listeners.notify()
	return nil
}

func (f *RegularFrame) bonusBallsAllowed() int {
	if f.strike {
		return 2
	}
	return 1
}

func (f *RegularFrame) pinfall() int {
	sum := 0
	for _, b := range f.balls {
		if b != Unset {
			sum += b
		}
	}
	return sum
}

// Scores returns a copy of the ball slots; unset slots hold Unset
func (f *RegularFrame) Scores() []int {
	return append([]int(nil), f.balls[:]...)
}

// Total returns the frame total including bonus, or 0 before the first ball
func (f *RegularFrame) Total() int {
	if f.total == Unset {
		return 0
	}
	return f.total
}

// Bonus returns the bonus points credited so far
func (f *RegularFrame) Bonus() int { return f.bonus }

func (f *RegularFrame) IsStrike() bool { return f.strike }
func (f *RegularFrame) IsSpare() bool  { return f.spare }

// IsComplete reports whether no more balls will be recorded in this frame
func (f *RegularFrame) IsComplete() bool {
	return f.strike || f.balls[1] != Unset
}

func (f *RegularFrame) Subscribe(l Listener) {
	f.listeners = append(f.listeners, l)
}

func (f *RegularFrame) Snapshot() FrameSnapshot {
	return FrameSnapshot{Scores: f.Scores(), Total: f.Total(), Strike: f.strike, Spare: f.spare}
}

func (f *RegularFrame) String() string {
	return fmt.Sprintf("Ball 1: %d; Ball 2: %d; Total: %d", f.balls[0], f.balls[1], f.total)
}

// LastFrame is the tenth frame. A strike or spare earns fill balls, which are
// recorded in the frame's own slots instead of as separate bonus.
type LastFrame struct {
	balls     [LastFrameBalls]int
	total     int
	strike    bool
	spare     bool
	listeners listeners
}

// NewLastFrame creates an empty tenth frame
func NewLastFrame() *LastFrame {
	return &LastFrame{
		balls: [LastFrameBalls]int{Unset, Unset, Unset},
		total: Unset,
	}
}

func (f *LastFrame) sealed() {}

// RecordFirstBall records the first ball and marks a strike on ten pins
func (f *LastFrame) RecordFirstBall(pins int) error {
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	if f.balls[0] != Unset {
		return fmt.Errorf("%w: first ball already recorded", ErrRule)
	}

	f.balls[0] = pins
	f.strike = pins == TotalPins
	f.recompute()
	return nil
}

// RecordSecondBall records the second ball. After a strike it is a fresh
// rack and goes through AddBonusPoints.
func (f *LastFrame) RecordSecondBall(pins int) error {
	if f.strike {
		if f.balls[1] != Unset {
			return fmt.Errorf("%w: second ball already recorded", ErrRule)
		}
		return f.AddBonusPoints(pins)
	}
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	switch {
	case f.balls[0] == Unset:
		return fmt.Errorf("%w: first ball not recorded", ErrRule)
	case f.balls[1] != Unset:
		return fmt.Errorf("%w: second ball already recorded", ErrRule)
	case f.balls[0]+pins > TotalPins:
		return fmt.Errorf("%w: frame cannot exceed %d pins (%d + %d)", ErrRule, TotalPins, f.balls[0], pins)
	}

	f.balls[1] = pins
	f.spare = f.balls[0]+pins == TotalPins
	f.recompute()
	return nil
}

// RecordThirdBall records the final fill ball, allowed only after a strike or
// spare
func (f *LastFrame) RecordThirdBall(pins int) error {
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	if !f.strike && !f.spare {
		return fmt.Errorf("%w: third ball needs a strike or spare", ErrRule)
	}
	if f.balls[1] == Unset {
		return fmt.Errorf("%w: second ball not recorded", ErrRule)
	}
	return f.AddBonusPoints(pins)
}

// AddBonusPoints records the next fill ball in the first free slot
func (f *LastFrame) AddBonusPoints(pins int) error {
	if err := validatePins(pins, TotalPins); err != nil {
		return err
	}
	if !f.strike && !f.spare {
		return fmt.Errorf("%w: fill balls need a strike or spare", ErrRule)
	}

	slot := 2
	if f.strike && f.balls[1] == Unset {
		slot = 1
	}
	if f.balls[slot] != Unset {
		return fmt.Errorf("%w: no fill ball left in the last frame", ErrRule)
	}
	// A strike followed by a non-strike leaves the same rack for the last ball
	if slot == 2 && f.strike && f.balls[1] < TotalPins && f.balls[1]+pins > TotalPins {
		return fmt.Errorf("%w: fill balls cannot exceed %d pins (%d + %d)", ErrRule, TotalPins, f.balls[1], pins)
	}

	f.balls[slot] = pins
	f.recompute()
	return nil
}

func (f *LastFrame) recompute() {
	f.total = 0
	for _, b := range f.balls {
		if b != Unset {
			f.total += b
		}
	}
	f.listeners.notify()
}

// Scores returns a copy of the ball slots; unset slots hold Unset
func (f *LastFrame) Scores() []int {
	return append([]int(nil), f.balls[:]...)
}

// Total returns the sum of recorded balls, or 0 before the first ball
func (f *LastFrame) Total() int {
	if f.total == Unset {
		return 0
	}
	return f.total
}

func (f *LastFrame) IsStrike() bool { return f.strike }
func (f *LastFrame) IsSpare() bool  { return f.spare }

// IsComplete reports whether no more balls will be recorded in this frame
func (f *LastFrame) IsComplete() bool {
	if f.balls[2] != Unset {
		return true
	}
	return f.balls[1] != Unset && !f.strike && !f.spare
}

func (f *LastFrame) Subscribe(l Listener) {
	f.listeners = append(f.listeners, l)
}

func (f *LastFrame) Snapshot() FrameSnapshot {
	return FrameSnapshot{Scores: f.Scores(), Total: f.Total(), Strike: f.strike, Spare: f.spare}
}

func (f *LastFrame) String() string {
	return fmt.Sprintf("Ball 1: %d; Ball 2: %d; Ball 3: %d; Total: %d", f.balls[0], f.balls[1], f.balls[2], f.total)
}
