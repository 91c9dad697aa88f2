package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// TSV columns: id, hex, seed, time, label
var headerLine = "id\thex\tseed\ttime\tlabel\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WritePlainIDs writes one bare text ID per line.
func WritePlainIDs(w io.Writer, infos []Info) error {
	for _, in := range infos {
		if _, err := io.WriteString(w, in.ID.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WritePlain writes every column, aligned.
func WritePlain(w io.Writer, infos []Info, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, in := range infos {
		line := fmt.Sprintf("%s\t%s\t%d\t%s\t%s\n",
			in.ID, in.Hex, in.Seed, in.Time.Format(time.RFC3339), esc(in.Label))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}
