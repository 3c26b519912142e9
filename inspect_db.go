package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/config"
	"github.com/camden-git/totenbilder/database"
)

func newInspectDBCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "inspect-db",
		Short: "Print sample rows to check the archive tables and the image join",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cfg.DatabaseConfigured() {
				return errors.New("no database configured, set DB_HOST or DATABASE_PATH")
			}
			db, err := database.InitDB(database.Settings{Driver: cfg.DBDriver, DSN: cfg.DBDSN, MaxOpenConns: 1}, zap.NewNop())
			if err != nil {
				return err
			}
			defer db.Close()
			return runInspectDB(cmd.Context(), db, cmd.OutOrStdout(), samples)
		},
	}
	cmd.Flags().IntVarP(&samples, "join-rows", "n", 10, "Number of raw listing join rows to print")
	return cmd
}

func runInspectDB(ctx context.Context, db database.Querier, out io.Writer, joinRows int) error {
	fmt.Fprintln(out, "--- Debugging Database ---")

	fmt.Fprintln(out, "\n1. Sampling totenbilder:")
	people, err := database.SampleNewestTotenbilder(ctx, db, 3)
	if err != nil {
		return err
	}
	if err := printJSON(out, people); err != nil {
		return err
	}
	if len(people) == 0 {
		return nil
	}

	nid := people[0].NID
	fmt.Fprintf(out, "\n2. Checking images for nid %d:\n", nid)
	images, err := database.ListImagesForTotenbild(ctx, db, nid)
	if err != nil {
		return err
	}
	if err := printJSON(out, images); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n3. Checking the default listing join:")
	rows, err := database.SampleListingJoin(ctx, db, joinRows)
	if err != nil {
		return err
	}
	return printJSON(out, rows)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
