package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nickbeaird/recordexpungPDX/internal/statute"
)

var statutesYAML bool

// statutesCmd represents the statutes command
var statutesCmd = &cobra.Command{
	Use:   "statutes",
	Short: "List the statute reference table",
	Long: `List the statute ranges used to classify charges, in the order they are
checked. The first matching range wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := statute.DefaultTable()
		out := cmd.OutOrStdout()

		if statutesYAML {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(map[string][]statute.Range{"ranges": table.Ranges()}); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MIN\tMAX\tCATEGORY\tNAME")
		for _, r := range table.Ranges() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Min, r.Max, r.Category, r.Name)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statutesCmd)
	statutesCmd.Flags().BoolVar(&statutesYAML, "yaml", false, "print the table as YAML")
}
