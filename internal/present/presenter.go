package present

import (
	"io"

	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/internal/ui"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	// Verbose makes plain output print every column instead of bare IDs.
	Verbose bool
	// Styled enables terminal styling in pretty output.
	Styled bool
}

// ParseMode parses "plain", "pretty", "json" or "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// Render writes infos according to opts.
func Render(w io.Writer, infos []format.Info, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, infos, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, infos)
	case ModePretty:
		for i, in := range infos {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, ui.FormatInfo(in, opts.Styled)); err != nil {
				return err
			}
		}
		return nil
	default:
		if !opts.Verbose {
			return format.WritePlainIDs(w, infos)
		}
		return format.WritePlain(w, infos, opts.Headers)
	}
}
