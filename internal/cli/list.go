package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/minid/internal/db"
	"github.com/mithrel/minid/internal/present"
	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/internal/ui"
	"github.com/mithrel/minid/internal/util"
	"github.com/mithrel/minid/pkg/minid"
)

func recordInfo(r db.Record) format.Info {
	in := format.Describe(r.ID)
	in.Label = r.Label
	created := r.CreatedAt
	in.CreatedAt = &created
	return in
}

func newListCmd() *cobra.Command {
	var opts db.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded ids in id order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			store, err := app.Store(cmd.Context())
			if err != nil {
				return err
			}
			recs, err := store.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			infos := make([]format.Info, len(recs))
			for i, r := range recs {
				infos[i] = recordInfo(r)
			}
			popts, err := outputOptions(cmd, app.Cfg)
			if err != nil {
				return err
			}
			popts.Verbose = true
			return present.Render(cmd.OutOrStdout(), infos, popts)
		},
	}
	cmd.Flags().StringVarP(&opts.Match, "match", "m", "", "fuzzy filter on labels")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of ids to list (0 = all)")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Display a recorded id",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			app, ok := appFromContext(cmd.Context())
			if !ok {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			store, err := app.Store(cmd.Context())
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			recs, err := store.List(cmd.Context(), db.ListOptions{})
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			ids := make([]string, len(recs))
			for i, r := range recs {
				ids[i] = r.ID.String()
			}
			return util.ScoreCompletions(toComplete, ids, 20), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			id, err := minid.Parse(args[0])
			if err != nil {
				return err
			}
			store, err := app.Store(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := store.Get(cmd.Context(), id)
			if errors.Is(err, db.ErrNotFound) {
				return fmt.Errorf("%s: %w", id, err)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), ui.FormatInfo(recordInfo(rec), isTerminal(cmd.OutOrStdout())))
			return nil
		},
	}
}
