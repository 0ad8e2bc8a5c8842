package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/pipeline"
)

var checkFlags struct {
	name    string
	statute string
	level   string
	ruling  string
	date    string
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a single charge given on the command line",
	Long: `Check classifies one charge and prints its eligibility.

Leave --ruling and --date empty when the disposition is not known.

Example:
  expunge check --statute 163.415 --level "Misdemeanor Class A" --ruling convicted --date 2023-06-01
  expunge check --statute 813.010 --level "Misdemeanor Class A" --as-of 2024-01-15
  expunge check --statute 164.043 --level "Felony Class C" --name "Theft in the Third Degree"`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"as_of":         "as-of",
			"output.format": "format",
		})
	},
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.statute, "statute", "", "ORS statute, e.g. 163.415 (required)")
	checkCmd.Flags().StringVar(&checkFlags.level, "level", "", `charge level, e.g. "Felony Class B" (required)`)
	checkCmd.Flags().StringVar(&checkFlags.name, "name", "", "charge name as recorded by the court")
	checkCmd.Flags().StringVar(&checkFlags.ruling, "ruling", "", "disposition ruling (convicted, dismissed, acquitted, ...)")
	checkCmd.Flags().StringVar(&checkFlags.date, "date", "", "disposition date (YYYY-MM-DD)")
	checkCmd.Flags().String("as-of", "", "evaluate as of this date (YYYY-MM-DD, default today)")
	checkCmd.Flags().String("format", pipeline.FormatJSON, "output format (json, yaml)")

	_ = checkCmd.MarkFlagRequired("statute")
	_ = checkCmd.MarkFlagRequired("level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	renderer, err := pipeline.NewRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}

	charge, err := newCheckCharge(checkFlags.name, checkFlags.statute, checkFlags.level, checkFlags.ruling, checkFlags.date)
	if err != nil {
		return err
	}

	// A single charge gains nothing from the cache
	cfg.Cache.Enabled = false
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	result, err := p.ClassifyAndEvaluate(charge)
	if err != nil {
		return err
	}

	return renderer.Render(cmd.OutOrStdout(), []pipeline.Record{{
		Charge: charge,
		Result: &result,
	}})
}

// newCheckCharge builds a single charge from flag values. Without a ruling or
// date the charge has no disposition.
func newCheckCharge(name, statuteText, level, ruling, date string) (model.Charge, error) {
	charge := model.Charge{
		ID:      "check",
		Name:    name,
		Statute: statuteText,
		Level:   level,
	}
	if ruling == "" && date == "" {
		return charge, nil
	}

	disp, err := model.ParseDisposition(ruling, date)
	if err != nil {
		return model.Charge{}, err
	}
	charge.Disposition = &disp
	return charge, nil
}
