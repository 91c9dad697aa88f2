package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/pkg/minid"
)

func TestFormatInfo_Plain(t *testing.T) {
	in := format.Describe(minid.MustParse("AAECAwQFBgcI"))
	out := FormatInfo(in, false)

	assert.True(t, strings.HasPrefix(out, "ID:      AAECAwQFBgcI\n"))
	assert.Contains(t, out, "Hex:     000102030405060708\n")
	assert.Contains(t, out, "Seed:    66051 (")
	assert.Contains(t, out, "Random:  0405060708\n")
	assert.NotContains(t, out, "Label:")
	assert.NotContains(t, out, "Created:")
}

func TestFormatInfo_Record(t *testing.T) {
	in := format.Describe(minid.MustParse("AAECAwQFBgcI"))
	in.Label = "invoice"
	created := time.Unix(1_700_000_000, 0)
	in.CreatedAt = &created

	out := FormatInfo(in, false)
	assert.Contains(t, out, "Label:   invoice\n")
	assert.Contains(t, out, "Created: "+created.Local().Format(time.RFC3339))
}

func TestFormatInfo_StyledKeepsContent(t *testing.T) {
	in := format.Describe(minid.MustParse("AAECAwQFBgcI"))
	out := FormatInfo(in, true)
	assert.Contains(t, out, "AAECAwQFBgcI")
	assert.Contains(t, out, "0405060708")
}
