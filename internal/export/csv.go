package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"gridscape/internal/model"
)

var stepHeader = []string{"episode_id", "scenario", "pov", "task", "seed", "step", "action", "reward"}

var summaryHeader = []string{"episode_id", "scenario", "pov", "task", "seed", "steps", "reward", "terminated", "truncated", "started_at", "finished_at"}

// WriteStepsCSV writes one row per recorded transition, all episodes
// concatenated in input order.
func WriteStepsCSV(out io.Writer, episodes []model.EpisodeRecord) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(stepHeader); err != nil {
		return fmt.Errorf("write steps header: %w", err)
	}
	for _, ep := range episodes {
		if len(ep.Actions) != len(ep.Rewards) {
			return fmt.Errorf("episode %s records %d actions but %d rewards", ep.ID, len(ep.Actions), len(ep.Rewards))
		}
		for i, action := range ep.Actions {
			if err := writer.Write([]string{
				ep.ID,
				ep.Scenario,
				ep.POV,
				strconv.Itoa(ep.Task),
				strconv.FormatInt(ep.Seed, 10),
				strconv.Itoa(i + 1),
				strconv.Itoa(action),
				strconv.FormatFloat(ep.Rewards[i], 'f', -1, 64),
			}); err != nil {
				return fmt.Errorf("write step row for episode %s: %w", ep.ID, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV writes one row per episode.
func WriteSummaryCSV(out io.Writer, episodes []model.EpisodeRecord) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, ep := range episodes {
		if err := writer.Write([]string{
			ep.ID,
			ep.Scenario,
			ep.POV,
			strconv.Itoa(ep.Task),
			strconv.FormatInt(ep.Seed, 10),
			strconv.Itoa(ep.Steps),
			strconv.FormatFloat(ep.Reward, 'f', -1, 64),
			strconv.FormatBool(ep.Terminated),
			strconv.FormatBool(ep.Truncated),
			ep.StartedAt.UTC().Format(time.RFC3339Nano),
			ep.FinishedAt.UTC().Format(time.RFC3339Nano),
		}); err != nil {
			return fmt.Errorf("write summary row for episode %s: %w", ep.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
