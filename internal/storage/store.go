package storage

import (
	"context"

	"gridscape/internal/model"
)

// Store defines persistence operations for episode traces and per-scenario
// aggregates. Scenario filters match the normalized scenario name; the empty
// string matches everything.
type Store interface {
	Init(ctx context.Context) error
	SaveEpisode(ctx context.Context, episode model.EpisodeRecord) error
	GetEpisode(ctx context.Context, id string) (model.EpisodeRecord, bool, error)
	ListEpisodes(ctx context.Context, scenario string) ([]model.EpisodeRecord, error)
	SaveScenarioSummary(ctx context.Context, summary model.ScenarioSummary) error
	GetScenarioSummary(ctx context.Context, name string) (model.ScenarioSummary, bool, error)
	ListScenarioSummaries(ctx context.Context) ([]model.ScenarioSummary, error)
}
