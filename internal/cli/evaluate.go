package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/nickbeaird/recordexpungPDX/internal/metrics"
	"github.com/nickbeaird/recordexpungPDX/internal/pipeline"
	"github.com/nickbeaird/recordexpungPDX/internal/worker"
)

var (
	outPath      string
	noCache      bool
	noSummary    bool
	batchTimeout time.Duration
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>...",
	Short: "Evaluate every charge in one or more charge files",
	Long: `Evaluate reads charge files (YAML or JSON), classifies each charge and
decides its set-aside eligibility. Charges are evaluated concurrently and
independently: a malformed charge is reported in place without stopping
the rest.

Example:
  expunge evaluate charges.yaml
  expunge evaluate a.yaml b.json --as-of 2024-01-15 --format yaml
  expunge evaluate charges.yaml --out results.json --metrics-file expunge.prom`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"as_of":               "as-of",
			"concurrency.workers": "concurrency",
			"output.format":       "format",
			"metrics.file":        "metrics-file",
		})
	},
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().String("as-of", "", "evaluate as of this date (YYYY-MM-DD, default today)")
	evaluateCmd.Flags().Int("concurrency", runtime.NumCPU(), "number of concurrent workers")
	evaluateCmd.Flags().String("format", pipeline.FormatJSON, "output format (json, yaml)")
	evaluateCmd.Flags().String("metrics-file", "", "write Prometheus metrics to this file")
	evaluateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	evaluateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the classification cache")
	evaluateCmd.Flags().BoolVar(&noSummary, "no-summary", false, "do not print the summary table to stderr")
	evaluateCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for the batch")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	renderer, err := pipeline.NewRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}

	m := metrics.New()
	p, err := pipeline.NewPipeline(cfg, pipeline.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	stderr := cmd.ErrOrStderr()
	if cfg.Output.Verbose {
		fmt.Fprintf(stderr, "Files:    %d\n", len(args))
		fmt.Fprintf(stderr, "Workers:  %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(stderr, "As of:    %s\n", p.Today())
		fmt.Fprintf(stderr, "Cache:    %v\n\n", cfg.Cache.Enabled)
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results, err := processor.ProcessFiles(ctx, args)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	for _, r := range results {
		if r.Input.Err != nil {
			m.IncrementChargeError(pipeline.ErrorKind(r.Input.Err))
		}
	}

	records := worker.Records(results)
	if err := writeRecords(cmd.OutOrStdout(), outPath, renderer, records); err != nil {
		return err
	}

	if !noSummary {
		if err := renderer.RenderSummary(stderr, records); err != nil {
			return fmt.Errorf("render summary: %w", err)
		}
	}

	if cfg.Metrics.File != "" {
		if err := m.WriteTextfile(cfg.Metrics.File); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// writeRecords renders to path, or to stdout when path is empty
func writeRecords(stdout io.Writer, path string, renderer *pipeline.Renderer, records []pipeline.Record) (err error) {
	if path == "" {
		return renderer.Render(stdout, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	return renderer.Render(f, records)
}
