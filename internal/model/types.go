package model

import "time"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// EpisodeRecord is the persisted trace of one episode run.
type EpisodeRecord struct {
	VersionedRecord
	ID         string    `json:"id"`
	Scenario   string    `json:"scenario"`
	POV        string    `json:"pov"`
	Task       int       `json:"task,omitempty"`
	Seed       int64     `json:"seed"`
	Steps      int       `json:"steps"`
	Reward     float64   `json:"reward"`
	Terminated bool      `json:"terminated"`
	Truncated  bool      `json:"truncated"`
	Actions    []int     `json:"actions"`
	Rewards    []float64 `json:"rewards"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// ScenarioSummary aggregates the recorded episodes of one scenario.
type ScenarioSummary struct {
	VersionedRecord
	Name       string  `json:"name"`
	Episodes   int     `json:"episodes"`
	Solved     int     `json:"solved"`
	BestReward float64 `json:"best_reward"`
	MeanReward float64 `json:"mean_reward"`
}
