package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mithrel/minid/internal/present"
)

func outputOptions(cmd *cobra.Command, v *viper.Viper) (present.Options, error) {
	mode, ok := present.ParseMode(v.GetString("output.format"))
	if !ok {
		return present.Options{}, fmt.Errorf("unknown output format %q", v.GetString("output.format"))
	}
	return present.Options{
		Mode:       mode,
		JSONIndent: v.GetBool("output.json_indent"),
		Headers:    v.GetBool("output.headers"),
		Styled:     isTerminal(cmd.OutOrStdout()),
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
