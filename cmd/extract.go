package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lehigh-university-libraries/medline/citation"
	"github.com/lehigh-university-libraries/medline/export"
	"github.com/lehigh-university-libraries/medline/mapping"
)

// bindFlags maps a command's flag names to viper keys so a flag like
// --year-info-only can also come from MEDLINE_YEAR_INFO_ONLY or the config
// file's year_info_only. Binding happens at run time because the shared
// flags (input, gzip, lenient) exist on several commands.
func bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		err = viper.BindPFlag(key, f)
	})
	return err
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract citation records to CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		opts := optionsFromViper()

		inputPath := viper.GetString("input")
		outputPath := viper.GetString("output")
		format := viper.GetString("format")

		profile := mapping.Default()
		if path := viper.GetString("profile"); path != "" {
			var err error
			profile, err = mapping.Load(path)
			if err != nil {
				return err
			}
		}

		writer, err := export.New(format, profile, viper.GetBool("pretty"))
		if err != nil {
			return err
		}

		doc, err := decodeInput(inputPath, viper.GetBool("gzip"))
		if err != nil {
			return err
		}

		records, err := citation.Parse(doc, opts)
		if err != nil {
			return err
		}
		slog.Debug("parsed citation set", "records", len(records), "deletes", len(doc.DeletePMIDs))

		out, err := openOutput(outputPath)
		if err != nil {
			return err
		}
		werr := writer.Write(out, citation.FlattenAll(records, opts))
		closeQuietly(out)
		if werr != nil {
			return fmt.Errorf("writing %s output: %w", format, werr)
		}
		return nil
	},
}

// optionsFromViper assembles extraction options from flags, environment,
// and the config file.
func optionsFromViper() citation.Options {
	opts := citation.DefaultOptions()
	opts.YearInfoOnly = viper.GetBool("year_info_only")
	opts.NLMCategory = viper.GetBool("nlm_category")
	opts.ParseTime = viper.GetBool("parse_time")
	opts.AuthorList = viper.GetBool("author_list")
	opts.ReferenceList = viper.GetBool("reference_list")
	opts.HistoryDatesList = viper.GetBool("history_dates_list")
	opts.InvestigatorList = viper.GetBool("investigator_list")
	opts.ELocationIDsList = viper.GetBool("elocation_ids_list")
	opts.DatabanksList = viper.GetBool("databanks_list")
	opts.PersonalSubjectNamesList = viper.GetBool("personal_subject_names_list")
	opts.SupplementaryConceptsList = viper.GetBool("supplementary_concepts_list")
	opts.GrantIDsList = viper.GetBool("grant_ids_list")
	opts.Lenient = viper.GetBool("lenient")
	return opts
}

// addSharedFlags registers the input flags common to extract, grants, and
// load.
func addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input XML file (default: stdin)")
	cmd.Flags().Bool("gzip", false, "Treat input as gzip even without a .gz extension")
	cmd.Flags().Bool("lenient", false, "Skip malformed citations with a warning instead of failing")
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().StringP("format", "f", "csv", "Output format: csv or json")
	extractCmd.Flags().String("profile", "", "Column profile YAML file (CSV only)")
	extractCmd.Flags().Bool("pretty", false, "Indent JSON output")
	extractCmd.Flags().Bool("year-info-only", true, "Restrict dates to year granularity")
	extractCmd.Flags().Bool("nlm-category", false, "Label abstract sections by NlmCategory instead of Label")
	extractCmd.Flags().Bool("parse-time", false, "Append hour:minute to history dates when available")
	extractCmd.Flags().Bool("author-list", false, "Emit authors as a structured list")
	extractCmd.Flags().Bool("reference-list", false, "Emit references as a structured list")
	extractCmd.Flags().Bool("history-dates-list", false, "Emit history dates as a structured list")
	extractCmd.Flags().Bool("investigator-list", false, "Emit investigators as a structured list")
	extractCmd.Flags().Bool("elocation-ids-list", false, "Emit e-location IDs as a structured list")
	extractCmd.Flags().Bool("databanks-list", false, "Emit databanks as a structured list")
	extractCmd.Flags().Bool("personal-subject-names-list", false, "Emit personal-name subjects as a structured list")
	extractCmd.Flags().Bool("supplementary-concepts-list", false, "Emit supplementary concepts as a structured list")
	extractCmd.Flags().Bool("grant-ids-list", false, "Emit grants as a structured list")
	addSharedFlags(extractCmd)
}
