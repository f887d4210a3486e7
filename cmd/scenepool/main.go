package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/config"
	"github.com/peczenyj/scenepool/internal/logging"
	"github.com/peczenyj/scenepool/internal/sim"
	"github.com/peczenyj/scenepool/promstats"
)

var version = "0.1.0"

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "scenepool",
		Short: "scenepool - recycle scene instances with per-use info",
		Long: `scenepool drives a projectile simulation on top of a scene instance pool
and reports how many instances the workload needed.`,
		SilenceUsage: true,
	}

	root.SetOut(out)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "scenepool v%s\n", version)
			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newInitCommand(), newRunCommand())

	return root
}

func newInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default simulation config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Save(output, config.DefaultSimulation()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "scenepool.yaml", "path of the config file to write")

	return cmd
}

type runOptions struct {
	configFile string
	frames     int
	asJSON     bool
	metrics    bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the projectile simulation",
		Long: `Run the projectile simulation described by a YAML config and print the
final pool counters.

Example:
  scenepool run --config scenepool.yaml --frames 600 --json --metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("frames") {
				opts.frames = -1
			}

			return runSimulation(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "simulation config file (YAML)")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "number of frames, overrides the config")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the counters as JSON")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print the Prometheus metrics after the run")

	return cmd
}

func runSimulation(out io.Writer, opts runOptions) error {
	cfg := config.DefaultSimulation()

	if opts.configFile != "" {
		loaded, err := config.LoadSimulation(opts.configFile)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if opts.frames >= 0 {
		cfg.Frames = opts.frames
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	collector := promstats.NewCollector(reg, cfg.MetricsNamespace)

	world, err := sim.Build(cfg, logger, collector)
	if err != nil {
		return err
	}

	stats := world.Sim.Run(cfg.Frames)

	if err := printStats(out, stats, opts.asJSON); err != nil {
		return err
	}

	if opts.metrics {
		return printMetrics(out, reg)
	}

	return nil
}

func printStats(out io.Writer, stats scenepool.Stats, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}

		_, err = fmt.Fprintln(out, string(data))

		return err
	}

	_, err := fmt.Fprintf(out,
		"pool %s: %d instances (%d idle, %d outstanding), max size %d, collection check %t\n",
		stats.Name,
		stats.CountAll,
		stats.CountInactive,
		stats.Outstanding,
		stats.MaxSize,
		stats.CollectionCheck,
	)

	return err
}

func printMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}

	return nil
}
