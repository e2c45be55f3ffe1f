package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gridscape/internal/config"
	"gridscape/internal/export"
	gridapi "gridscape/pkg/gridscape"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

type clientFactory func() (*gridapi.Client, error)

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		storeKind string
		dbPath    string
	)

	root := &cobra.Command{
		Use:          "gridscapectl",
		Short:        "Drive grid world scenarios: run episodes, inspect records, export traces",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&storeKind, "store", cfg.StoreKind, "store backend: memory|bolt|sqlite")
	root.PersistentFlags().StringVar(&dbPath, "db-path", cfg.StorePath, "database path for bolt and sqlite backends")

	newClient := func() (*gridapi.Client, error) {
		return gridapi.New(gridapi.Options{StoreKind: storeKind, DBPath: dbPath})
	}

	root.AddCommand(
		newScenariosCmd(newClient),
		newPovsCmd(),
		newPlayCmd(newClient, cfg),
		newEpisodesCmd(newClient),
		newShowCmd(newClient),
		newExportCmd(newClient),
		newBenchCmd(newClient),
	)
	return root
}

func newScenariosCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List registered scenarios with stored episode statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			items, err := client.Scenarios(cmd.Context())
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Printf("scenario=%s size=%dx%d tasks=%d min_steps=%d max_steps=%d episodes=%s solved=%d best_reward=%.3f mean_reward=%.3f description=%s\n",
					item.Name, item.Width, item.Height, item.Tasks, item.MinSteps, item.MaxSteps,
					humanize.Comma(int64(item.Episodes)), item.Solved, item.BestReward, item.MeanReward, item.Summary)
			}
			return nil
		},
	}
}

func newPovsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "povs",
		Short: "Describe the supported view spec strings",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Println("global                full board in world orientation")
			fmt.Println("local_<r>             (2r+1)x(2r+1) window centered on the agent, world orientation")
			fmt.Println("local_xray_<r>        local window that sees through walls and locked doors")
			fmt.Println("forward_<l>           strip reaching l cells ahead of the agent, one cell wide")
			fmt.Println("forward_<l>_<w>       forward strip w cells wide; w must be odd")
			fmt.Println("forward_xray_<l>_<w>  forward strip without occlusion")
		},
	}
}

func newPlayCmd(newClient clientFactory, cfg config.Config) *cobra.Command {
	var (
		configPath string
		povSpec    string
		task       int
		random     bool
		seed       int64
		policy     string
		script     string
		record     bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "play [scenario]",
		Short: "Run one episode and print the final board and outcome",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req gridapi.EpisodeRequest
			if configPath != "" {
				loaded, err := loadEpisodeRequestFromConfig(configPath)
				if err != nil {
					return err
				}
				req = loaded
			}
			if len(args) == 1 {
				req.Scenario = args[0]
			}
			if cmd.Flags().Changed("pov") || req.POV == "" {
				req.POV = povSpec
			}
			if cmd.Flags().Changed("task") {
				req.Task = task
			}
			if cmd.Flags().Changed("random") {
				req.Random = random
			}
			if cmd.Flags().Changed("seed") || req.Seed == 0 {
				req.Seed = seed
			}
			if cmd.Flags().Changed("policy") {
				req.Policy = policy
			}
			if script != "" {
				actions, err := parseScript(script)
				if err != nil {
					return err
				}
				req.Script = actions
			}
			if cmd.Flags().Changed("record") {
				req.Record = record
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			summary, err := client.RunEpisode(cmd.Context(), req)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Print(export.Render(summary.Final))
			}
			fmt.Printf("episode id=%s scenario=%s pov=%s task=%d seed=%d steps=%d reward=%.3f terminated=%t truncated=%t solved=%t elapsed=%s\n",
				summary.ID, summary.Scenario, summary.POV, summary.Task, summary.Seed,
				summary.Steps, summary.Reward, summary.Terminated, summary.Truncated,
				summary.Solved, summary.Elapsed.Round(time.Microsecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "JSON file with episode request fields")
	cmd.Flags().StringVar(&povSpec, "pov", cfg.POV, "view spec, run the povs command for the forms")
	cmd.Flags().IntVar(&task, "task", 0, "task number for multi-task scenarios, 0 for the default")
	cmd.Flags().BoolVar(&random, "random", false, "randomize goal placement on reset where supported")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "random stream seed, 0 derives one")
	cmd.Flags().StringVar(&policy, "policy", "", "action policy: random|script")
	cmd.Flags().StringVar(&script, "script", "", "comma separated action indices, implies the script policy")
	cmd.Flags().BoolVar(&record, "record", false, "persist the episode in the store")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the final board dump")
	return cmd
}

func newEpisodesCmd(newClient clientFactory) *cobra.Command {
	var (
		scenarioName string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List recorded episodes, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			records, err := client.Episodes(cmd.Context(), gridapi.EpisodesRequest{
				Scenario: scenarioName,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no episodes found")
				return nil
			}
			for _, rec := range records {
				fmt.Printf("episode id=%s scenario=%s pov=%s task=%d steps=%d reward=%.3f terminated=%t truncated=%t started=%s\n",
					rec.ID, rec.Scenario, rec.POV, rec.Task, rec.Steps, rec.Reward,
					rec.Terminated, rec.Truncated,
					humanize.RelTime(rec.StartedAt, time.Now(), "ago", "from now"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "", "only episodes of this scenario")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of episodes listed")
	return cmd
}

func newShowCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "show <episode-id>",
		Short: "Print one recorded episode including its action trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			rec, err := client.Episode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("episode id=%s scenario=%s pov=%s task=%d seed=%d\n",
				rec.ID, rec.Scenario, rec.POV, rec.Task, rec.Seed)
			fmt.Printf("steps=%d reward=%.3f terminated=%t truncated=%t duration=%s started=%s\n",
				rec.Steps, rec.Reward, rec.Terminated, rec.Truncated,
				rec.FinishedAt.Sub(rec.StartedAt).Round(time.Microsecond),
				humanize.RelTime(rec.StartedAt, time.Now(), "ago", "from now"))
			fmt.Printf("actions=%s\n", formatActions(rec.Actions))
			return nil
		},
	}
}

func newExportCmd(newClient clientFactory) *cobra.Command {
	var (
		scenarioName string
		outPath      string
		steps        bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write recorded episodes to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			summary, err := client.Export(cmd.Context(), gridapi.ExportRequest{
				Scenario: scenarioName,
				Steps:    steps,
				Path:     outPath,
			})
			if err != nil {
				return err
			}
			fmt.Printf("exported episodes=%d to=%s\n", summary.Episodes, summary.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "", "only episodes of this scenario")
	cmd.Flags().StringVar(&outPath, "out", "episodes.csv", "output CSV path")
	cmd.Flags().BoolVar(&steps, "steps", false, "write one row per step instead of per episode")
	return cmd
}

func newBenchCmd(newClient clientFactory) *cobra.Command {
	var (
		scenarios string
		povs      string
		episodes  int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure stepping throughput across scenarios and views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			req := gridapi.BenchRequest{Episodes: episodes, Seed: seed}
			if scenarios != "" {
				req.Scenarios = splitList(scenarios)
			}
			if povs != "" {
				req.POVs = splitList(povs)
			}

			items, err := client.Bench(cmd.Context(), req)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Printf("bench scenario=%s pov=%s episodes=%d steps=%s elapsed=%s steps_per_sec=%s\n",
					item.Scenario, item.POV, item.Episodes,
					humanize.Comma(int64(item.Steps)),
					item.Elapsed.Round(time.Microsecond),
					humanize.CommafWithDigits(item.StepsPerSec, 0))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarios, "scenarios", "", "comma separated scenario names, empty for all")
	cmd.Flags().StringVar(&povs, "povs", "global", "comma separated view specs")
	cmd.Flags().IntVar(&episodes, "episodes", 5, "episodes per scenario and view pair")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random stream seed, 0 derives one")
	return cmd
}

func parseScript(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	actions := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid action %q in script", part)
		}
		actions = append(actions, n)
	}
	if len(actions) == 0 {
		return nil, errors.New("script holds no actions")
	}
	return actions, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func formatActions(actions []int) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ",")
}
