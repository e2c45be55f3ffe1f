package export

import (
	"strings"
	"testing"
	"time"

	"gridscape/internal/model"
)

func TestWriteStepsCSV(t *testing.T) {
	episodes := []model.EpisodeRecord{
		{
			ID:       "sparse-001",
			Scenario: "sparse",
			POV:      "global",
			Seed:     7,
			Actions:  []int{0, 3},
			Rewards:  []float64{0, 1},
		},
		{
			ID:       "distractive-002",
			Scenario: "distractive",
			POV:      "local_2",
			Task:     1,
			Seed:     -4,
			Actions:  []int{1},
			Rewards:  []float64{0.1},
		},
	}

	var out strings.Builder
	if err := WriteStepsCSV(&out, episodes); err != nil {
		t.Fatalf("write steps csv: %v", err)
	}

	want := "episode_id,scenario,pov,task,seed,step,action,reward\n" +
		"sparse-001,sparse,global,0,7,1,0,0\n" +
		"sparse-001,sparse,global,0,7,2,3,1\n" +
		"distractive-002,distractive,local_2,1,-4,1,1,0.1\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected steps output:\n%s", got)
	}
}

func TestWriteStepsCSVRejectsUnevenTrace(t *testing.T) {
	episodes := []model.EpisodeRecord{
		{ID: "bad-001", Actions: []int{0, 0}, Rewards: []float64{0}},
	}
	var out strings.Builder
	if err := WriteStepsCSV(&out, episodes); err == nil {
		t.Fatal("expected error for uneven action/reward trace")
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	started := time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC)
	episodes := []model.EpisodeRecord{
		{
			ID:         "multitask-003",
			Scenario:   "multitask",
			POV:        "forward_3_3",
			Task:       2,
			Seed:       11,
			Steps:      8,
			Reward:     1,
			Terminated: true,
			StartedAt:  started,
			FinishedAt: started.Add(1500 * time.Millisecond),
		},
	}

	var out strings.Builder
	if err := WriteSummaryCSV(&out, episodes); err != nil {
		t.Fatalf("write summary csv: %v", err)
	}

	want := "episode_id,scenario,pov,task,seed,steps,reward,terminated,truncated,started_at,finished_at\n" +
		"multitask-003,multitask,forward_3_3,2,11,8,1,true,false,2026-02-03T10:00:00Z,2026-02-03T10:00:01.5Z\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected summary output:\n%s", got)
	}
}
