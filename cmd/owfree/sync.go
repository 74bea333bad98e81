package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joss/owfree/internal/allowlist"
	"github.com/joss/owfree/internal/catalog"
	"github.com/joss/owfree/internal/config"
	"github.com/joss/owfree/internal/logging"
	"github.com/joss/owfree/internal/render"
	"github.com/joss/owfree/internal/runner"
	"github.com/joss/owfree/internal/store"
)

func syncCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch the catalog and update the allow-list",
		Long: `Fetch the OpenRouter catalog, classify models, and replace the
allow-list with the free set. Dry-run unless --apply is given.

Exit code 0 covers success, "no changes", and dry-runs; any fetch,
locate, or store failure exits non-zero.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := config.Load(cfg, os.LookupEnv); err != nil {
				fatal(err)
			}
			runSync(cmd.Context(), cfg)
		},
	}

	storeFlags(cmd, cfg)
	cmd.Flags().BoolVar(&cfg.Apply, "apply", false, "write changes (otherwise dry-run)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "list added/removed model IDs")
	cmd.Flags().BoolVar(&cfg.Backup, "backup", false, "snapshot webui.db before applying")
	cmd.Flags().StringVar(&cfg.BackupDir, "backup-dir", "", "snapshot directory (default: alongside the db)")
	cmd.Flags().DurationVar(&cfg.FetchTimeout, "timeout", 0, "catalog fetch timeout (default 30s)")

	return cmd
}

func runSync(ctx context.Context, cfg *config.Config) {
	log := logging.New("owfree")

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fatal(err)
	}
	defer st.Close()

	client := catalog.NewClient(cfg.APIKey, catalog.WithTimeout(cfg.FetchTimeout))

	opts := []runner.Option{
		runner.WithLogger(log.WithComponent("runner")),
		runner.WithPath(allowlist.ConnectionPath(cfg.ConnectionIndex)),
		runner.WithApply(cfg.Apply),
	}
	if cfg.Apply && cfg.Backup {
		dir := cfg.BackupDir
		if dir == "" {
			dir = defaultBackupDir(cfg.DBPath)
		}
		opts = append(opts, runner.WithSnapshot(func() (string, error) {
			return store.Snapshot(cfg.DBPath, dir)
		}))
	}

	r := runner.New(client, st, opts...)
	res, err := r.Run(ctx)
	if err != nil {
		fatal(err)
	}

	out := render.New(pretty, cfg.Verbose)
	fmt.Print(out.Report(render.Summary{
		Total:        res.Total,
		Free:         res.Free,
		Paid:         res.Paid,
		Changes:      res.Changes,
		Applied:      res.Applied,
		SnapshotPath: res.SnapshotPath,
	}))
}

// defaultBackupDir places snapshots next to the database.
func defaultBackupDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "backups")
}
