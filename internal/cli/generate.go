package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/minid/internal/db"
	"github.com/mithrel/minid/internal/present"
	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/pkg/minid"
)

func newGenerateCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "new"},
		Short:   "Mint new ids",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{
				"count":  "generate.count",
				"record": "registry.enabled",
			})
			n := app.Cfg.GetInt("generate.count")
			if n <= 0 {
				return errors.New("count must be greater than 0")
			}

			ids := make([]minid.ID, n)
			for i := range ids {
				ids[i] = app.Gen.Generate()
			}
			app.Log.Debug("generated ids", "count", n)

			if app.Cfg.GetBool("registry.enabled") {
				store, err := app.Store(cmd.Context())
				if err != nil {
					return err
				}
				now := time.Now().UTC()
				recs := make([]db.Record, n)
				for i, id := range ids {
					recs[i] = db.Record{ID: id, Label: label, CreatedAt: now}
				}
				if err := store.Put(cmd.Context(), recs...); err != nil {
					return fmt.Errorf("record ids: %w", err)
				}
				app.Log.Info("recorded ids", "count", n, "label", label)
			}

			infos := make([]format.Info, n)
			for i, id := range ids {
				infos[i] = format.Describe(id)
				infos[i].Label = label
			}
			opts, err := outputOptions(cmd, app.Cfg)
			if err != nil {
				return err
			}
			return present.Render(cmd.OutOrStdout(), infos, opts)
		},
	}
	cmd.Flags().IntP("count", "n", 1, "number of ids to generate")
	cmd.Flags().Bool("record", false, "record generated ids in the local registry")
	cmd.Flags().StringVar(&label, "label", "", "label stored with recorded ids")
	return cmd
}
