package engine

import (
	"fmt"
	"time"

	"bazaar/agent"
	"bazaar/game"
	"bazaar/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultMaxTurns bounds games that never terminate on their own. Trades
// deplete neither the deck nor the coin stacks, so two agents that only
// trade (or two stuck traders passing) would loop forever without a valve.
const DefaultMaxTurns = 10000

// Option configures an Engine.
type Option func(*Engine)

// WithNames labels the two traders in logs and results.
func WithNames(first, second string) Option {
	return func(e *Engine) {
		e.names = [2]string{first, second}
	}
}

// WithMaxTurns overrides the turn valve.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		e.maxTurns = n
	}
}

// WithDecisionTimeout bounds how long an agent may think. On timeout the
// first legal action is played in its stead and a warning is logged, so a
// hung agent never blocks the engine.
func WithDecisionTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// Engine drives one game from deal to scoring: generate the legal actions,
// ask the acting trader's agent to choose, resolve, repeat. It owns the
// authoritative state; agents only ever see observations and action lists.
type Engine struct {
	state    *game.GameState
	agents   [2]agent.Agent
	names    [2]string
	seed     uint64
	maxTurns int
	timeout  time.Duration
}

// Result summarizes one finished game.
type Result struct {
	GameID uuid.UUID
	Seed   uint64
	Names  [2]string
	Scores [2]int
	// Winner is the name of the trader with the higher final score, empty
	// on a draw.
	Winner    string
	Turns     int
	EndReason game.EndReason
	// Cutoff is set when the turn valve stopped the game before a
	// termination condition did. The scores are taken as they stand.
	Cutoff   bool
	Duration time.Duration
}

// New deals a game from the rules and seed and pairs it with two agents.
// The first agent acts first.
func New(rules *game.Rules, seed uint64, first, second agent.Agent, options ...Option) (*Engine, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("engine needs two agents")
	}
	state, err := game.NewGame(rules, seed)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		state:    state,
		agents:   [2]agent.Agent{first, second},
		names:    [2]string{"player1", "player2"},
		seed:     seed,
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// State returns the engine's current game state.
func (e *Engine) State() *game.GameState {
	return e.state
}

// Run plays the game to its end and returns the result. A trader with no
// legal action is forced to pass; an agent that returns an action outside
// the legal set aborts the game with ErrIllegalAction, identifying the
// offender. The error is not retried, it marks a broken agent.
func (e *Engine) Run() (Result, error) {
	id := uuid.New()
	start := time.Now()
	log.Info().Msgf("game %s: %s vs %s (seed %d)", id, e.names[0], e.names[1], e.seed)

	cutoff := false
	for !e.state.Ended() {
		if e.state.Turns() >= e.maxTurns {
			cutoff = true
			log.Warn().Msgf("game %s: turn valve hit after %d turns, scoring as it stands", id, e.state.Turns())
			break
		}
		current := e.state.Current()
		actions := e.state.LegalActions()

		var choice game.Action
		if len(actions) == 0 {
			log.Warn().Msgf("game %s: %s has no legal actions, forcing a pass", id, e.names[current])
			choice = game.Pass()
		} else {
			choice = e.decide(current, actions)
			if utils.FindIndex(actions, choice) < 0 {
				err := fmt.Errorf("%w: %s chose %v", game.ErrIllegalAction, e.names[current], choice)
				log.Error().Msgf("game %s aborted: %v", id, err)
				return Result{}, err
			}
		}

		next, err := e.state.Apply(choice)
		if err != nil {
			err = fmt.Errorf("%s played %v: %w", e.names[current], choice, err)
			log.Error().Msgf("game %s aborted: %v", id, err)
			return Result{}, err
		}
		log.Debug().Msgf("game %s turn %d: %s plays %v", id, next.Turns(), e.names[current], choice)
		e.state = next
	}

	result := e.result(id, cutoff, time.Since(start))
	if result.Winner == "" {
		log.Info().Msgf("game %s over after %d turns (%v): draw at %d-%d",
			id, result.Turns, result.EndReason, result.Scores[0], result.Scores[1])
	} else {
		log.Info().Msgf("game %s over after %d turns (%v): %s wins %d-%d",
			id, result.Turns, result.EndReason, result.Winner, result.Scores[0], result.Scores[1])
	}
	return result, nil
}

// decide asks the acting trader's agent to choose. With a timeout configured
// the call runs in its own goroutine; a late answer is discarded.
func (e *Engine) decide(current int, actions []game.Action) game.Action {
	obs := e.state.Observe(current)
	ag := e.agents[current]
	if e.timeout <= 0 {
		return ag.SelectAction(actions, obs)
	}
	done := make(chan game.Action, 1)
	go func() {
		done <- ag.SelectAction(actions, obs)
	}()
	select {
	case choice := <-done:
		return choice
	case <-time.After(e.timeout):
		log.Warn().Msgf("%s took longer than %v, substituting %v", e.names[current], e.timeout, actions[0])
		return actions[0]
	}
}

func (e *Engine) result(id uuid.UUID, cutoff bool, elapsed time.Duration) Result {
	scores := e.state.FinalScores()
	winner := ""
	switch {
	case scores[0] > scores[1]:
		winner = e.names[0]
	case scores[1] > scores[0]:
		winner = e.names[1]
	}
	return Result{
		GameID:    id,
		Seed:      e.seed,
		Names:     e.names,
		Scores:    scores,
		Winner:    winner,
		Turns:     e.state.Turns(),
		EndReason: e.state.Reason(),
		Cutoff:    cutoff,
		Duration:  elapsed,
	}
}
