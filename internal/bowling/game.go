package bowling

import "fmt"

// NumberOfFrames is the number of frames in a game
const NumberOfFrames = 10

const lastFrameIndex = NumberOfFrames - 1

// GameState represents the state of one player's game
type GameState int

const (
	InProgress GameState = iota
	Finished
)

// String returns the string representation of a game state
func (gs GameState) String() string {
	switch gs {
	case InProgress:
		return "In Progress"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Game is the ten-frame sequence bowled by one player. It routes each ball to
// the right frame and slot, and carries bonus points back to earlier strikes
// and spares.
type Game struct {
	frames            [NumberOfFrames]Frame
	current           int
	awaitingFirstBall bool
	lastFrameShots    int
	finished          bool
}

// NewGame creates a game with nine regular frames and a last frame
func NewGame() *Game {
	g := &Game{awaitingFirstBall: true}
	for i := 0; i < lastFrameIndex; i++ {
		g.frames[i] = NewRegularFrame()
	}
	g.frames[lastFrameIndex] = NewLastFrame()
	return g
}

// AddScore records the next ball. It reports whether the frame the ball was
// recorded in is now complete.
func (g *Game) AddScore(pins int) (bool, error) {
	if g.finished {
		return false, fmt.Errorf("%w: all frames have already been bowled", ErrState)
	}
	if g.current == lastFrameIndex {
		return g.addToLastFrame(pins)
	}
	return g.addToRegularFrame(pins)
}

func (g *Game) addToRegularFrame(pins int) (bool, error) {
	frame := g.frames[g.current]

	if !g.awaitingFirstBall {
		if err := frame.RecordSecondBall(pins); err != nil {
			return false, err
		}
		if prev := g.previous(1); prev != nil && prev.IsStrike() {
			if err := prev.AddBonusPoints(pins); err != nil {
				return false, err
			}
		}
		g.current++
		g.awaitingFirstBall = true
		return true, nil
	}

	if err := frame.RecordFirstBall(pins); err != nil {
		return false, err
	}
	if err := g.creditFirstBall(pins); err != nil {
		return false, err
	}
	if frame.IsStrike() {
		g.current++
		return true, nil
	}
	g.awaitingFirstBall = false
	return false, nil
}

// creditFirstBall offers the first ball of the current frame as bonus to the
// previous frame, and to the one before it when both are strikes
func (g *Game) creditFirstBall(pins int) error {
	prev := g.previous(1)
	if prev == nil || !(prev.IsStrike() || prev.IsSpare()) {
		return nil
	}
	if err := prev.AddBonusPoints(pins); err != nil {
		return err
	}
	if !prev.IsStrike() {
		return nil
	}
	if before := g.previous(2); before != nil && before.IsStrike() {
		return before.AddBonusPoints(pins)
	}
	return nil
}

func (g *Game) addToLastFrame(pins int) (bool, error) {
	last := g.frames[lastFrameIndex].(*LastFrame)

	switch g.lastFrameShots {
	case 0:
		if err := last.RecordFirstBall(pins); err != nil {
			return false, err
		}
		if err := g.creditFirstBall(pins); err != nil {
			return false, err
		}

	case 1:
		if err := last.RecordSecondBall(pins); err != nil {
			return false, err
		}
		if prev := g.previous(1); prev.IsStrike() {
			if err := prev.AddBonusPoints(pins); err != nil {
				return false, err
			}
		}
		if !last.IsStrike() && !last.IsSpare() {
			g.finished = true
		}

	default:
		if err := last.RecordThirdBall(pins); err != nil {
			return false, err
		}
		g.finished = true
	}

	g.lastFrameShots++
	return g.finished, nil
}

// previous returns the frame n places before the current one, or nil
func (g *Game) previous(n int) Frame {
	if g.current-n < 0 {
		return nil
	}
	return g.frames[g.current-n]
}

// Frames returns the game's frames in order
func (g *Game) Frames() []Frame {
	return append([]Frame(nil), g.frames[:]...)
}

// Frame returns the frame at the zero-based index i
func (g *Game) Frame(i int) (Frame, error) {
	if i < 0 || i >= NumberOfFrames {
		return nil, fmt.Errorf("%w: frame index %d out of range", ErrValidation, i)
	}
	return g.frames[i], nil
}

// Snapshots returns an immutable copy of every frame
func (g *Game) Snapshots() []FrameSnapshot {
	snaps := make([]FrameSnapshot, NumberOfFrames)
	for i, f := range g.frames {
		snaps[i] = f.Snapshot()
	}
	return snaps
}

// TotalScore returns the sum of all frame totals
func (g *Game) TotalScore() int {
	total := 0
	for _, f := range g.frames {
		total += f.Total()
	}
	return total
}

// IsFinished reports whether every frame has been bowled
func (g *Game) IsFinished() bool {
	return g.finished
}

// State returns InProgress or Finished
func (g *Game) State() GameState {
	if g.finished {
		return Finished
	}
	return InProgress
}

// CurrentFrame returns the 1-based number of the frame the next ball goes to
func (g *Game) CurrentFrame() int {
	return g.current + 1
}
