// Package experiments pits agent configurations against each other over
// batches of seeded games and records the outcomes.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"bazaar/agent"
	"bazaar/engine"
	"bazaar/experiments/metrics"
	"bazaar/game"
)

const DefaultGames = 30 // Per matchup

// Experiment describes a tournament between agent configs. Every matchup
// plays Games games with the starting seat alternating between the two
// configs, so neither banks the first-move advantage. All game seeds and
// agent seeds derive from Seed, so a run replays exactly.
type Experiment struct {
	Name     string
	Games    int
	Seed     uint64
	Timeout  time.Duration // Per-decision budget, zero means unlimited
	Rules    *game.Rules
	Configs  []metrics.AgentConfig
	Matchups [][2]int // Pairs of AgentConfig IDs
}

// Run plays every matchup of the experiment and returns one record per game.
func Run(exp Experiment) ([]metrics.GameRecord, error) {
	if exp.Games <= 0 {
		exp.Games = DefaultGames
	}
	if exp.Rules == nil {
		exp.Rules = game.StandardRules()
	}

	configs := map[int]metrics.AgentConfig{}
	for _, config := range exp.Configs {
		configs[config.ID] = config
	}

	rng := rand.New(rand.NewSource(exp.Seed))
	count := 0
	records := []metrics.GameRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.Matchups {
		config1, ok := configs[matchup[0]]
		if !ok {
			return nil, fmt.Errorf("matchup %d: unknown agent config %d", mi+1, matchup[0])
		}
		config2, ok := configs[matchup[1]]
		if !ok {
			return nil, fmt.Errorf("matchup %d: unknown agent config %d", mi+1, matchup[1])
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.Matchups), config1, config2)

		for i := 0; i < exp.Games; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			result, err := runGame(exp, first, second, rng)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			records = append(records, newGameRecord(count, first, second, result))

			winner := result.Winner
			if winner == "" {
				winner = "draw"
			}
			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(exp.Matchups), i+1, exp.Games, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.Matchups))
	}

	log.Info().Msgf("completed %s experiment with %d games", exp.Name, count)

	return records, nil
}

// runGame executes a single game between two agent configs, first holding
// the starting seat. The three seeds are drawn unconditionally so the rng
// stream keeps its shape no matter which agent kinds play.
func runGame(exp Experiment, first, second metrics.AgentConfig, rng *rand.Rand) (engine.Result, error) {
	firstSeed, secondSeed := rng.Uint64(), rng.Uint64()
	gameSeed := rng.Uint64()

	agent1, err := buildAgent(first, firstSeed)
	if err != nil {
		return engine.Result{}, err
	}
	agent2, err := buildAgent(second, secondSeed)
	if err != nil {
		return engine.Result{}, err
	}

	options := []engine.Option{engine.WithNames(first.Name(), second.Name())}
	if exp.Timeout > 0 {
		options = append(options, engine.WithDecisionTimeout(exp.Timeout))
	}

	e, err := engine.New(exp.Rules, gameSeed, agent1, agent2, options...)
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

func buildAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case metrics.KindRandom:
		return agent.NewRandom(seed), nil
	case metrics.KindRule:
		return agent.NewRule(), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func newGameRecord(id int, first, second metrics.AgentConfig, result engine.Result) metrics.GameRecord {
	return metrics.GameRecord{
		ID:        id,
		GameID:    result.GameID,
		Seed:      result.Seed,
		Agent1:    first.ID,
		Agent2:    second.ID,
		Winner:    result.Winner,
		Score1:    result.Scores[0],
		Score2:    result.Scores[1],
		Turns:     result.Turns,
		EndReason: result.EndReason.String(),
		Cutoff:    result.Cutoff,
		Duration:  result.Duration,
	}
}
