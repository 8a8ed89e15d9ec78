package game

import "errors"

var (
	// ErrIllegalAction marks an action the current state does not allow.
	// Agents are untrusted, so the resolver re-validates every submission
	// and the engine aborts the game on this error rather than retrying.
	ErrIllegalAction = errors.New("illegal action")

	// ErrGameOver marks an action submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidRules marks rule data that cannot set up a playable game.
	ErrInvalidRules = errors.New("invalid rules")
)
