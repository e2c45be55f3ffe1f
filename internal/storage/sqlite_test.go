//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteStoreEpisodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gridscape.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	base := time.Unix(3000, 0).UTC()
	episodes := []struct {
		id       string
		scenario string
		offset   time.Duration
	}{
		{"ep-2", "sparse", time.Second},
		{"ep-1", "sparse", 0},
		{"ep-3", "multitask", 2 * time.Second},
	}
	for _, e := range episodes {
		if err := store.SaveEpisode(ctx, testEpisode(e.id, e.scenario, base.Add(e.offset))); err != nil {
			t.Fatalf("save %s: %v", e.id, err)
		}
	}

	loaded, ok, err := store.GetEpisode(ctx, "ep-2")
	if err != nil {
		t.Fatalf("get episode: %v", err)
	}
	if !ok || loaded.Scenario != "sparse" || loaded.Steps != 4 {
		t.Fatalf("unexpected episode: ok=%v %+v", ok, loaded)
	}

	sparse, err := store.ListEpisodes(ctx, "sparse")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sparse) != 2 || sparse[0].ID != "ep-1" || sparse[1].ID != "ep-2" {
		t.Fatalf("unexpected list order: %+v", ids(sparse))
	}

	if _, ok, err := store.GetEpisode(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing episode: ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreScenarioSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gridscape.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	summary := testSummary("sparse")
	if err := store.SaveScenarioSummary(ctx, summary); err != nil {
		t.Fatalf("save summary: %v", err)
	}

	summary.Episodes = 6
	if err := store.SaveScenarioSummary(ctx, summary); err != nil {
		t.Fatalf("resave summary: %v", err)
	}

	loaded, ok, err := store.GetScenarioSummary(ctx, "sparse")
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !ok || loaded.Episodes != 6 {
		t.Fatalf("unexpected summary: ok=%v %+v", ok, loaded)
	}

	summaries, err := store.ListScenarioSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "sparse" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}
