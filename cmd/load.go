package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lehigh-university-libraries/medline/citation"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS citations (
    pmid TEXT NOT NULL,
    is_delete BOOLEAN NOT NULL DEFAULT FALSE,
    record JSONB NOT NULL
)`

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load citation records into a Postgres table as JSONB",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}

		dsn := viper.GetString("dsn")
		if dsn == "" {
			return fmt.Errorf("--dsn is required (or MEDLINE_DSN)")
		}

		doc, err := decodeInput(viper.GetString("input"), viper.GetBool("gzip"))
		if err != nil {
			return err
		}

		opts := citation.DefaultOptions()
		opts.Lenient = viper.GetBool("lenient")
		records, err := citation.Parse(doc, opts)
		if err != nil {
			return err
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer closeQuietly(db)

		if err := db.Ping(); err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		if _, err := db.Exec(createTableSQL); err != nil {
			return fmt.Errorf("creating citations table: %w", err)
		}

		loaded, err := loadRecords(db, records, opts)
		if err != nil {
			return err
		}
		slog.Info("loaded citations", "count", loaded)
		return nil
	},
}

func loadRecords(db *sql.DB, records []citation.Record, opts citation.Options) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare("INSERT INTO citations (pmid, is_delete, record) VALUES ($1, $2, $3)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer closeQuietly(stmt)

	loaded := 0
	for _, record := range records {
		data, err := json.Marshal(record.Flatten(opts))
		if err != nil {
			return 0, fmt.Errorf("encoding record %s: %w", record.PMID, err)
		}
		if _, err := stmt.Exec(record.PMID, record.Delete, data); err != nil {
			return 0, fmt.Errorf("inserting record %s: %w", record.PMID, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return loaded, nil
}

func init() {
	loadCmd.Flags().String("dsn", "", "Postgres connection string")
	addSharedFlags(loadCmd)
}
