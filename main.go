package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bazaar/agent"
	"bazaar/engine"
	"bazaar/experiments"
	"bazaar/experiments/metrics"
	"bazaar/experiments/results"
	"bazaar/game"
)

type config struct {
	Experiment string        `env:"BAZAAR_EXPERIMENT"`
	Games      int           `env:"BAZAAR_GAMES" envDefault:"30"`
	Seed       uint64        `env:"BAZAAR_SEED" envDefault:"43646"`
	Timeout    time.Duration `env:"BAZAAR_TIMEOUT"`
	OutDir     string        `env:"BAZAAR_OUT_DIR" envDefault:"results"`
	Database   string        `env:"BAZAAR_DB"`
	Debug      bool          `env:"BAZAAR_DEBUG"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Msgf("failed to parse config: %v", err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.Experiment != "" {
		runExperiment(cfg)
		return
	}
	runExhibition(cfg)
}

// runExhibition plays a single game between the two built-in agents.
func runExhibition(cfg config) {
	caveman := agent.NewRandom(356)
	villager := agent.NewRule()

	options := []engine.Option{engine.WithNames("Caveman", "Villager")}
	if cfg.Timeout > 0 {
		options = append(options, engine.WithDecisionTimeout(cfg.Timeout))
	}

	e, err := engine.New(game.StandardRules(), cfg.Seed, caveman, villager, options...)
	if err != nil {
		log.Fatal().Msgf("failed to set up game: %v", err)
	}

	result, err := e.Run()
	if err != nil {
		log.Fatal().Msgf("game aborted: %v", err)
	}

	log.Info().Msgf("final scores %d-%d after %d turns (%s)",
		result.Scores[0], result.Scores[1], result.Turns, result.EndReason)
}

// runExperiment plays the configured tournament, writes the records as csv
// and, when a database path is set, accumulates them there too.
func runExperiment(cfg config) {
	exp := experiments.Experiment{
		Name:    cfg.Experiment,
		Games:   cfg.Games,
		Seed:    cfg.Seed,
		Timeout: cfg.Timeout,
		Configs: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindRandom},
			{ID: 2, Kind: metrics.KindRule},
		},
		Matchups: [][2]int{{1, 2}},
	}

	records, err := experiments.Run(exp)
	if err != nil {
		log.Fatal().Msgf("experiment failed: %v", err)
	}

	writer, err := metrics.NewWriter(cfg.OutDir, exp.Name)
	if err != nil {
		log.Fatal().Msgf("failed to create experiment writer: %v", err)
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		log.Fatal().Msgf("failed to store agent configs: %v", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Fatal().Msgf("failed to store game records: %v", err)
	}
	log.Info().Msgf("stored records under %s", writer.Dir())

	if cfg.Database == "" {
		return
	}

	store, err := results.Open(cfg.Database)
	if err != nil {
		log.Fatal().Msgf("failed to open results store: %v", err)
	}
	defer store.Close()

	if err := store.SaveConfigs(exp.Name, exp.Configs); err != nil {
		log.Fatal().Msgf("failed to save agent configs: %v", err)
	}
	if err := store.SaveGames(exp.Name, records); err != nil {
		log.Fatal().Msgf("failed to save game records: %v", err)
	}

	tallies, err := store.WinTally(exp.Name)
	if err != nil {
		log.Fatal().Msgf("failed to tally results: %v", err)
	}
	for _, tally := range tallies {
		log.Info().Msgf("%s: %d wins, %d draws in %d games", tally.Agent, tally.Wins, tally.Draws, tally.Games)
	}
}
