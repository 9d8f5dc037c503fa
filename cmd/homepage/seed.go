package main

import (
	"fmt"

	"github.com/npohome/internal/db"
	"github.com/npohome/internal/fixture"
	"github.com/npohome/internal/service"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixture.yaml>...",
	Short: "Import home pages from YAML fixtures",
	Long: `Import home pages from YAML fixture files.

Pages are matched by slug: existing pages are updated, new ones created.
Every stream listed in the fixture replaces the stored stream after passing
the same validation as an editor's save. Rich text fields are Markdown.

Examples:
  homepage seed fixtures/home.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	if err := db.Init(cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	importer := fixture.NewImporter(service.NewHomePageService(db.DB, logger, nil))

	for _, path := range args {
		doc, err := fixture.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		result, err := importer.Import(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created, %d updated, %d streams saved\n",
			path, result.Created, result.Updated, result.Streams)
	}
	return nil
}
