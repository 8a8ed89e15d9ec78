// Package results stores experiment outcomes in a SQLite database so runs
// accumulate across invocations and can be compared with plain SQL.
package results

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"bazaar/experiments/metrics"
)

// Store wraps a SQLite connection for experiment results.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS agent_configs (
		experiment TEXT NOT NULL,
		id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (experiment, id)
	);

	CREATE TABLE IF NOT EXISTS game_records (
		game_id TEXT PRIMARY KEY,
		experiment TEXT NOT NULL,
		seq INTEGER NOT NULL,
		seed TEXT NOT NULL,
		agent1 INTEGER NOT NULL,
		agent2 INTEGER NOT NULL,
		winner TEXT NOT NULL,
		score1 INTEGER NOT NULL,
		score2 INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		end_reason TEXT NOT NULL,
		cutoff INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_game_records_experiment ON game_records(experiment);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveConfigs writes the agent configs of an experiment, replacing any
// earlier configs saved under the same experiment name.
func (s *Store) SaveConfigs(experiment string, configs []metrics.AgentConfig) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, config := range configs {
		_, err := tx.Exec(`INSERT OR REPLACE INTO agent_configs
			(experiment, id, kind, name)
			VALUES (?, ?, ?, ?)`,
			experiment, config.ID, config.Kind, config.Name(),
		)
		if err != nil {
			return fmt.Errorf("insert agent config %d: %w", config.ID, err)
		}
	}

	return tx.Commit()
}

// SaveGames appends game records under the given experiment name.
func (s *Store) SaveGames(experiment string, records []metrics.GameRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO game_records
		(game_id, experiment, seq, seed, agent1, agent2, winner,
		 score1, score2, turns, end_reason, cutoff, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, record := range records {
		cutoff := 0
		if record.Cutoff {
			cutoff = 1
		}

		_, err := stmt.Exec(
			record.GameID.String(), experiment, record.ID,
			strconv.FormatUint(record.Seed, 10),
			record.Agent1, record.Agent2, record.Winner,
			record.Score1, record.Score2, record.Turns,
			record.EndReason, cutoff, record.Duration.Nanoseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert game record %d: %w", record.ID, err)
		}
	}

	return tx.Commit()
}

// Tally is one agent's line in an experiment summary.
type Tally struct {
	Agent string `db:"agent"`
	Games int    `db:"games"`
	Wins  int    `db:"wins"`
	Draws int    `db:"draws"`
}

// WinTally summarizes an experiment: per agent, the games played and the
// wins and draws among them. Agents with no recorded games tally zeroes.
func (s *Store) WinTally(experiment string) ([]Tally, error) {
	var tallies []Tally
	err := s.db.Select(&tallies, `
		SELECT c.name AS agent,
		       COUNT(g.game_id) AS games,
		       COALESCE(SUM(CASE WHEN g.winner = c.name THEN 1 ELSE 0 END), 0) AS wins,
		       COALESCE(SUM(CASE WHEN g.winner = '' THEN 1 ELSE 0 END), 0) AS draws
		FROM agent_configs c
		LEFT JOIN game_records g
		       ON g.experiment = c.experiment
		      AND (g.agent1 = c.id OR g.agent2 = c.id)
		WHERE c.experiment = ?
		GROUP BY c.name
		ORDER BY wins DESC, agent ASC`,
		experiment,
	)
	if err != nil {
		return nil, fmt.Errorf("win tally: %w", err)
	}
	return tallies, nil
}
