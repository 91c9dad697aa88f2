package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/minid/internal/present"
	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/internal/ui"
	"github.com/mithrel/minid/pkg/minid"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <id>...",
		Short: "Validate ids and print their parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			var (
				infos []format.Info
				errs  []error
			)
			for _, s := range args {
				id, err := minid.Parse(s)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				infos = append(infos, format.Describe(id))
			}
			if len(infos) > 0 {
				opts, err := outputOptions(cmd, app.Cfg)
				if err != nil {
					return err
				}
				opts.Verbose = true
				if err := present.Render(cmd.OutOrStdout(), infos, opts); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show the seed, time and random tail of an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := minid.Parse(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), ui.FormatInfo(format.Describe(id), isTerminal(cmd.OutOrStdout())))
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex>",
		Short: "Encode 9 raw bytes, given as 18 hex digits, as an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}
			id, err := minid.FromSlice(raw)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
