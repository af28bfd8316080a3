// Package bowling implements the scoring engine for multi-player ten-pin
// bowling.
//
// The main type is Match, which seats up to six players, routes each ball to
// the player whose turn it is, and tracks the current leader(s).
//
// # Basic Usage
//
//	m := bowling.NewMatch()
//	_ = m.AddPlayer("Alice")
//	_ = m.AddPlayer("Bob")
//	m.Subscribe(func() {
//	    // re-query m.Frames, m.TotalScore, m.Leaders
//	})
//	if _, err := m.AddScore(7); err != nil {
//	    // errors.Is(err, bowling.ErrRule), bowling.ErrValidation, ...
//	}
//
// # Architecture
//
// Match delegates to one Game per player:
//   - Game: ten-frame state machine that records each ball in the right slot
//     and carries strike/spare bonus points back up to two frames
//   - Frame: sealed interface with two variants, RegularFrame (two balls) and
//     LastFrame (up to three balls)
//
// All operations are synchronous. Listeners run inline, in subscription
// order, before the mutating call returns; they must not call back into a
// mutating operation.
package bowling
