package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/owfree/internal/allowlist"
	"github.com/joss/owfree/internal/config"
	"github.com/joss/owfree/internal/render"
	"github.com/joss/owfree/internal/store"
)

func showCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the currently stored allow-list",
		Long:  `Read the allow-list from webui.db without fetching the catalog.`,
		Run: func(cmd *cobra.Command, args []string) {
			st, err := store.Open(cfg.DBPath)
			if err != nil {
				fatal(err)
			}
			defer st.Close()

			row, err := st.ReadRow(cmd.Context())
			if err != nil {
				fatal(err)
			}

			path := allowlist.ConnectionPath(cfg.ConnectionIndex)
			ids, err := allowlist.Locate(row.Data, path)
			if err != nil {
				fatal(err)
			}

			out := render.New(pretty, true)
			fmt.Print(out.AllowList(ids, path.String()))
		},
	}

	storeFlags(cmd, cfg)
	return cmd
}
