// Package agent holds the decision makers a game engine calls into. An
// agent is untrusted: the engine validates every choice against the legal
// set before resolving it.
package agent

import "bazaar/game"

// Agent picks one of the legal actions given an observation of the game.
// The returned action must be a member of actions; anything else aborts the
// game as an illegal move. Implementations own whatever randomness they use,
// independent of the engine's seed.
type Agent interface {
	SelectAction(actions []game.Action, obs game.Observation) game.Action
}
