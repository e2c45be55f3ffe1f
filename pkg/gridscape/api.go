package gridscape

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"gridscape/internal/engine"
	"gridscape/internal/export"
	"gridscape/internal/grid"
	"gridscape/internal/model"
	"gridscape/internal/scenario"
	"gridscape/internal/storage"
)

const (
	defaultDBPath   = "gridscape.db"
	defaultScenario = "sparse"

	PolicyRandom = "random"
	PolicyScript = "script"
)

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store
	ready bool
}

type EpisodeRequest struct {
	Scenario string
	POV      string
	Task     int
	Random   bool
	Seed     int64
	Policy   string
	Script   []int
	Record   bool
}

type EpisodeSummary struct {
	ID         string
	Scenario   string
	POV        string
	Task       int
	Seed       int64
	Steps      int
	Reward     float64
	Terminated bool
	Truncated  bool
	Solved     bool
	Final      grid.State
	Elapsed    time.Duration
}

type ScenarioItem struct {
	Name       string
	Summary    string
	Width      int
	Height     int
	Tasks      int
	MinSteps   int
	MaxSteps   int
	Episodes   int
	Solved     int
	BestReward float64
	MeanReward float64
}

type EpisodesRequest struct {
	Scenario string
	Limit    int
}

type ExportRequest struct {
	Scenario string
	Steps    bool
	Path     string
}

type ExportSummary struct {
	Path     string
	Episodes int
}

type BenchRequest struct {
	Scenarios []string
	POVs      []string
	Episodes  int
	Seed      int64
}

type BenchItem struct {
	Scenario    string
	POV         string
	Episodes    int
	Steps       int
	Elapsed     time.Duration
	StepsPerSec float64
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = "memory"
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.ensureStore(ctx)
}

func (c *Client) Scenarios(ctx context.Context) ([]ScenarioItem, error) {
	if err := c.ensureStore(ctx); err != nil {
		return nil, err
	}

	specs := scenario.List()
	out := make([]ScenarioItem, 0, len(specs))
	for _, spec := range specs {
		item := ScenarioItem{
			Name:     spec.Name,
			Summary:  spec.Summary,
			Width:    spec.Width,
			Height:   spec.Height,
			Tasks:    spec.Tasks,
			MinSteps: spec.MinSteps,
			MaxSteps: spec.MaxSteps,
		}
		stored, ok, err := c.store.GetScenarioSummary(ctx, spec.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			item.Episodes = stored.Episodes
			item.Solved = stored.Solved
			item.BestReward = stored.BestReward
			item.MeanReward = stored.MeanReward
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Client) RunEpisode(ctx context.Context, req EpisodeRequest) (EpisodeSummary, error) {
	if req.Scenario == "" {
		req.Scenario = defaultScenario
	}
	if req.POV == "" {
		req.POV = "global"
	}
	if req.Policy == "" {
		if len(req.Script) > 0 {
			req.Policy = PolicyScript
		} else {
			req.Policy = PolicyRandom
		}
	}
	if req.Policy != PolicyRandom && req.Policy != PolicyScript {
		return EpisodeSummary{}, fmt.Errorf("unsupported policy: %s", req.Policy)
	}
	if req.Policy == PolicyScript && len(req.Script) == 0 {
		return EpisodeSummary{}, errors.New("script policy needs at least one action")
	}

	spec, err := scenario.Get(req.Scenario)
	if err != nil {
		return EpisodeSummary{}, err
	}
	seed := req.Seed
	if seed == 0 {
		seed = deriveSeed(spec.Name)
	}

	eng, err := scenario.Build(spec.Name, scenario.Options{
		POV:    req.POV,
		Task:   req.Task,
		Random: req.Random,
		Seed:   seed,
	})
	if err != nil {
		return EpisodeSummary{}, err
	}
	eng.Reset()

	policyRNG := rand.New(rand.NewSource(seed + 1000))
	started := time.Now().UTC()
	actions := make([]int, 0, eng.Settings().MaxSteps)
	rewards := make([]float64, 0, eng.Settings().MaxSteps)
	total := 0.0

	var last engine.StepResult
	for step := 0; ; step++ {
		if req.Policy == PolicyScript && step >= len(req.Script) {
			break
		}
		act := 0
		if req.Policy == PolicyScript {
			act = req.Script[step]
		} else {
			act = policyRNG.Intn(grid.ActionCount)
		}

		res, err := eng.Step(act)
		if err != nil {
			return EpisodeSummary{}, err
		}
		last = res
		actions = append(actions, act)
		rewards = append(rewards, res.Reward)
		total += res.Reward
		if res.Terminated || res.Truncated {
			break
		}
	}
	finished := time.Now().UTC()

	w := eng.World()
	summary := EpisodeSummary{
		ID:         fmt.Sprintf("%s-%s", spec.Name, uuid.NewString()),
		Scenario:   spec.Name,
		POV:        req.POV,
		Task:       req.Task,
		Seed:       seed,
		Steps:      eng.StepCount(),
		Reward:     total,
		Terminated: last.Terminated,
		Truncated:  last.Truncated,
		Solved:     last.Terminated && !w.Harmful(w.Agent.Pos),
		Final:      eng.State(),
		Elapsed:    finished.Sub(started),
	}

	if req.Record {
		if err := c.recordEpisode(ctx, summary, actions, rewards, started, finished); err != nil {
			return EpisodeSummary{}, err
		}
	}
	return summary, nil
}

func (c *Client) Episodes(ctx context.Context, req EpisodesRequest) ([]model.EpisodeRecord, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if err := c.ensureStore(ctx); err != nil {
		return nil, err
	}

	episodes, err := c.store.ListEpisodes(ctx, req.Scenario)
	if err != nil {
		return nil, err
	}
	if len(episodes) > req.Limit {
		episodes = episodes[len(episodes)-req.Limit:]
	}
	return episodes, nil
}

func (c *Client) Episode(ctx context.Context, id string) (model.EpisodeRecord, error) {
	if id == "" {
		return model.EpisodeRecord{}, errors.New("episode id is required")
	}
	if err := c.ensureStore(ctx); err != nil {
		return model.EpisodeRecord{}, err
	}

	record, ok, err := c.store.GetEpisode(ctx, id)
	if err != nil {
		return model.EpisodeRecord{}, err
	}
	if !ok {
		return model.EpisodeRecord{}, fmt.Errorf("episode not found: %s", id)
	}
	return record, nil
}

func (c *Client) Export(ctx context.Context, req ExportRequest) (ExportSummary, error) {
	if req.Path == "" {
		return ExportSummary{}, errors.New("export requires an output path")
	}
	if err := c.ensureStore(ctx); err != nil {
		return ExportSummary{}, err
	}

	episodes, err := c.store.ListEpisodes(ctx, req.Scenario)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(episodes) == 0 {
		return ExportSummary{}, errors.New("no episodes available to export")
	}

	file, err := os.Create(req.Path)
	if err != nil {
		return ExportSummary{}, err
	}
	defer file.Close()

	if req.Steps {
		err = export.WriteStepsCSV(file, episodes)
	} else {
		err = export.WriteSummaryCSV(file, episodes)
	}
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{Path: req.Path, Episodes: len(episodes)}, nil
}

func (c *Client) Bench(ctx context.Context, req BenchRequest) ([]BenchItem, error) {
	if req.Episodes <= 0 {
		req.Episodes = 5
	}
	if len(req.POVs) == 0 {
		req.POVs = []string{"global"}
	}
	names := req.Scenarios
	if len(names) == 0 {
		for _, spec := range scenario.List() {
			names = append(names, spec.Name)
		}
	}

	out := make([]BenchItem, 0, len(names)*len(req.POVs))
	for _, name := range names {
		for _, povSpec := range req.POVs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			item, err := c.benchCell(name, povSpec, req.Episodes, req.Seed)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *Client) benchCell(name, povSpec string, episodes int, seed int64) (BenchItem, error) {
	if seed == 0 {
		seed = deriveSeed(name)
	}
	eng, err := scenario.Build(name, scenario.Options{POV: povSpec, Seed: seed})
	if err != nil {
		return BenchItem{}, err
	}

	policyRNG := rand.New(rand.NewSource(seed + 1000))
	steps := 0
	started := time.Now()
	for ep := 0; ep < episodes; ep++ {
		eng.ResetSeed(seed + int64(ep))
		for {
			res, err := eng.Step(policyRNG.Intn(grid.ActionCount))
			if err != nil {
				return BenchItem{}, err
			}
			steps++
			if res.Terminated || res.Truncated {
				break
			}
		}
	}
	elapsed := time.Since(started)

	item := BenchItem{
		Scenario: name,
		POV:      povSpec,
		Episodes: episodes,
		Steps:    steps,
		Elapsed:  elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		item.StepsPerSec = float64(steps) / secs
	}
	return item, nil
}

func (c *Client) recordEpisode(ctx context.Context, s EpisodeSummary, actions []int, rewards []float64, started, finished time.Time) error {
	if err := c.ensureStore(ctx); err != nil {
		return err
	}

	record := model.EpisodeRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:         s.ID,
		Scenario:   s.Scenario,
		POV:        s.POV,
		Task:       s.Task,
		Seed:       s.Seed,
		Steps:      s.Steps,
		Reward:     s.Reward,
		Terminated: s.Terminated,
		Truncated:  s.Truncated,
		Actions:    actions,
		Rewards:    rewards,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if err := c.store.SaveEpisode(ctx, record); err != nil {
		return err
	}

	summary, ok, err := c.store.GetScenarioSummary(ctx, s.Scenario)
	if err != nil {
		return err
	}
	if !ok {
		summary = model.ScenarioSummary{
			VersionedRecord: model.VersionedRecord{
				SchemaVersion: storage.CurrentSchemaVersion,
				CodecVersion:  storage.CurrentCodecVersion,
			},
			Name: s.Scenario,
		}
	}
	if summary.Episodes == 0 || s.Reward > summary.BestReward {
		summary.BestReward = s.Reward
	}
	summary.MeanReward = (summary.MeanReward*float64(summary.Episodes) + s.Reward) / float64(summary.Episodes+1)
	summary.Episodes++
	if s.Solved {
		summary.Solved++
	}
	return c.store.SaveScenarioSummary(ctx, summary)
}

func (c *Client) ensureStore(ctx context.Context) error {
	if c.ready {
		return nil
	}
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	c.ready = true
	return nil
}

func deriveSeed(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64()) ^ time.Now().UnixNano()
}
