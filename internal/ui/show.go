package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/minid/internal/present/format"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	idStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// FormatInfo returns the human-readable breakdown of an ID used by
// `inspect`, `show` and pretty output. styled adds terminal colours.
func FormatInfo(in format.Info, styled bool) string {
	key := func(s string) string {
		s = fmt.Sprintf("%-8s", s+":")
		if styled {
			return keyStyle.Render(s)
		}
		return s
	}
	id := in.ID.String()
	random := in.Hex[8:]
	seedHex := in.Hex[:8]
	if styled {
		id = idStyle.Render(id)
		seedHex = faintStyle.Render(seedHex)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", key("ID"), id)
	fmt.Fprintf(&b, "%s %s%s\n", key("Hex"), seedHex, random)
	fmt.Fprintf(&b, "%s %d (%s)\n", key("Seed"), in.Seed, in.Time.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s %s\n", key("Random"), random)
	fmt.Fprintf(&b, "%s %016x\n", key("Hash"), in.Hash)
	if in.Label != "" {
		fmt.Fprintf(&b, "%s %s\n", key("Label"), in.Label)
	}
	if in.CreatedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", key("Created"), in.CreatedAt.Local().Format(time.RFC3339))
	}
	return b.String()
}
