package storage

import (
	"context"
	"testing"
	"time"

	"gridscape/internal/model"
)

func testEpisode(id, scenario string, startedAt time.Time) model.EpisodeRecord {
	return model.EpisodeRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		Scenario:        scenario,
		POV:             "global",
		Seed:            7,
		Steps:           4,
		Reward:          1.0,
		Terminated:      true,
		Actions:         []int{0, 0, 0, 0},
		Rewards:         []float64{0, 0, 0, 1.0},
		StartedAt:       startedAt,
		FinishedAt:      startedAt.Add(time.Second),
	}
}

func TestMemoryStoreEpisodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := testEpisode("ep-1", "sparse", time.Unix(100, 0).UTC())
	if err := store.SaveEpisode(ctx, input); err != nil {
		t.Fatalf("save episode: %v", err)
	}

	// Mutating the caller's slices must not reach the stored copy.
	input.Actions[0] = 3

	output, ok, err := store.GetEpisode(ctx, "ep-1")
	if err != nil {
		t.Fatalf("get episode: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted episode")
	}
	if output.Scenario != "sparse" || output.Reward != 1.0 {
		t.Fatalf("unexpected episode: %+v", output)
	}
	if output.Actions[0] != 0 {
		t.Fatalf("stored actions aliased caller slice: %+v", output.Actions)
	}

	if _, ok, err := store.GetEpisode(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing episode: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListEpisodesFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	base := time.Unix(1000, 0).UTC()
	for _, episode := range []model.EpisodeRecord{
		testEpisode("ep-b", "sparse", base.Add(2*time.Second)),
		testEpisode("ep-a", "sparse", base),
		testEpisode("ep-c", "multitask", base.Add(time.Second)),
	} {
		if err := store.SaveEpisode(ctx, episode); err != nil {
			t.Fatalf("save %s: %v", episode.ID, err)
		}
	}

	all, err := store.ListEpisodes(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].ID != "ep-a" || all[2].ID != "ep-b" {
		t.Fatalf("unexpected order: %+v", ids(all))
	}

	sparse, err := store.ListEpisodes(ctx, "sparse")
	if err != nil {
		t.Fatalf("list sparse: %v", err)
	}
	if len(sparse) != 2 || sparse[0].ID != "ep-a" || sparse[1].ID != "ep-b" {
		t.Fatalf("unexpected sparse episodes: %+v", ids(sparse))
	}
}

func TestMemoryStoreScenarioSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.ScenarioSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		Name:            "sparse",
		Episodes:        3,
		Solved:          2,
		BestReward:      1.0,
		MeanReward:      0.62,
	}
	if err := store.SaveScenarioSummary(ctx, input); err != nil {
		t.Fatalf("save summary: %v", err)
	}

	output, ok, err := store.GetScenarioSummary(ctx, "sparse")
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted summary")
	}
	if output.Episodes != 3 || output.BestReward != 1.0 {
		t.Fatalf("unexpected summary: %+v", output)
	}

	summaries, err := store.ListScenarioSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "sparse" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}

func ids(episodes []model.EpisodeRecord) []string {
	out := make([]string, len(episodes))
	for i, episode := range episodes {
		out[i] = episode.ID
	}
	return out
}
