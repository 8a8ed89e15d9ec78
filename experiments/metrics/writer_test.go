package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWriterCreatesTimestampedDir(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewWriter(dir, "smoke")
	require.NoError(t, err, "Should create the writer")

	info, err := os.Stat(writer.Dir())
	require.NoError(t, err, "Should create the base directory")
	require.True(t, info.IsDir(), "Should be a directory")
	require.Equal(t, filepath.Join(dir, "smoke"), filepath.Dir(writer.Dir()),
		"Should nest the timestamp under the experiment name")
}

func TestWriteAgentConfigs(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	configs := []AgentConfig{
		{ID: 1, Kind: KindRandom},
		{ID: 2, Kind: KindRule},
	}
	require.NoError(t, writer.WriteAgentConfigs(configs))

	rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3, "Should write a header and one row per config")
	require.Equal(t, []string{"id", "kind", "name"}, rows[0])
	require.Equal(t, []string{"1", "random", "random-1"}, rows[1])
	require.Equal(t, []string{"2", "rule", "rule-2"}, rows[2])
}

func TestWriteGameRecords(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	id := uuid.New()
	records := []GameRecord{
		{
			ID:        1,
			GameID:    id,
			Seed:      43646,
			Agent1:    1,
			Agent2:    2,
			Winner:    "rule-2",
			Score1:    41,
			Score2:    57,
			Turns:     38,
			EndReason: "coin stack exhausted",
			Cutoff:    false,
			Duration:  125 * time.Millisecond,
		},
	}
	require.NoError(t, writer.WriteGameRecords(records))

	rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"id", "game_id", "seed", "agent1", "agent2", "winner",
		"score1", "score2", "turns", "end_reason", "cutoff", "duration"}, rows[0])
	require.Equal(t, []string{"1", id.String(), "43646", "1", "2", "rule-2",
		"41", "57", "38", "coin stack exhausted", "false", "125ms"}, rows[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "Should open the csv file")
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err, "Should parse the csv file")
	return rows
}
