package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lehigh-university-libraries/medline/citation"
	"github.com/lehigh-university-libraries/medline/export"
	"github.com/lehigh-university-libraries/medline/mapping"
)

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Extract funding acknowledgements to CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}

		doc, err := decodeInput(viper.GetString("input"), viper.GetBool("gzip"))
		if err != nil {
			return err
		}

		grants, err := citation.ParseGrants(doc)
		if err != nil {
			return err
		}
		slog.Debug("parsed grants", "grants", len(grants))

		format := viper.GetString("format")
		profile := &mapping.Profile{
			Name:    "grants",
			Columns: mapping.GrantColumns(),
			Unset:   mapping.DefaultUnset,
		}
		writer, err := export.New(format, profile, viper.GetBool("pretty"))
		if err != nil {
			return err
		}

		rows := make([]map[string]any, 0, len(grants))
		for _, g := range grants {
			rows = append(rows, map[string]any{
				"pmid":          g.PMID,
				"grant_id":      g.GrantID,
				"grant_acronym": g.Acronym,
				"country":       g.Country,
				"agency":        g.Agency,
			})
		}

		out, err := openOutput(viper.GetString("output"))
		if err != nil {
			return err
		}
		werr := writer.Write(out, rows)
		closeQuietly(out)
		if werr != nil {
			return fmt.Errorf("writing %s output: %w", format, werr)
		}
		return nil
	},
}

func init() {
	grantsCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	grantsCmd.Flags().StringP("format", "f", "csv", "Output format: csv or json")
	grantsCmd.Flags().Bool("pretty", false, "Indent JSON output")
	addSharedFlags(grantsCmd)
}
