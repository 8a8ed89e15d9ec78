package metrics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Agent kinds recognized by the experiment runner.
const (
	KindRandom = "random"
	KindRule   = "rule"
)

type AgentConfig struct {
	ID   int
	Kind string // KindRandom or KindRule
}

// Name returns the agent name used in game records, e.g. "rule-2".
func (c AgentConfig) Name() string {
	return fmt.Sprintf("%s-%d", c.Kind, c.ID)
}

// GameRecord captures the outcome of a single game. Agent1 held the
// starting seat, so Score1 is the starting seat's score.
type GameRecord struct {
	ID        int       // Sequence number within the experiment
	GameID    uuid.UUID // Engine-assigned game identity
	Seed      uint64
	Agent1    int // AgentConfig.ID
	Agent2    int // AgentConfig.ID
	Winner    string
	Score1    int
	Score2    int
	Turns     int
	EndReason string
	Cutoff    bool
	Duration  time.Duration
}
