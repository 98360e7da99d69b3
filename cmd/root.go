// Package cmd provides CLI commands for medline.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/medline")
		}
	}

	viper.SetEnvPrefix("MEDLINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

var rootCmd = &cobra.Command{
	Use:   "medline",
	Short: "Extract flat bibliographic records from MEDLINE/PubMed XML",
	Long: `Medline extracts structured bibliographic records (title, abstract,
authors, journal metadata, MeSH terms, grants, references, dates,
identifiers) from MEDLINE/PubMed citation XML files.

Input defaults to stdin, output defaults to stdout; gzipped input is
detected by the .gz extension.

Examples:
  medline extract -i pubmed20n0014.xml.gz -o records.csv
  medline extract --format json --author-list < citations.xml
  medline grants -i pubmed20n0014.xml.gz
  medline load -i pubmed20n0014.xml.gz --dsn "postgres://localhost/medline?sslmode=disable"`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./medline.yaml)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(grantsCmd)
	rootCmd.AddCommand(loadCmd)
}
