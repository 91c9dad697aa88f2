package present

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/minid/internal/present/format"
	"github.com/mithrel/minid/pkg/minid"
)

func infos() []format.Info {
	a := format.Describe(minid.MustParse("AAECAwQFBgcI"))
	a.Label = "fixture"
	return []format.Info{a, format.Describe(minid.Nil)}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"plain": ModePlain, "pretty": ModePretty, "json": ModeJSON, "ndjson": ModeNDJSON} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMode("xml")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	t.Run("plain ids", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, infos(), Options{Mode: ModePlain}))
		assert.Equal(t, "AAECAwQFBgcI\nAAAAAAAAAAAA\n", buf.String())
	})

	t.Run("plain verbose", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, infos(), Options{Mode: ModePlain, Verbose: true, Headers: true}))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "id"))
		assert.Contains(t, lines[1], "000102030405060708")
		assert.Contains(t, lines[1], "fixture")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, infos(), Options{Mode: ModeJSON, JSONIndent: true}))
		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "AAECAwQFBgcI", got[0]["id"])
		assert.Equal(t, "fixture", got[0]["label"])
		assert.Equal(t, float64(0x00010203), got[0]["seed"])
		assert.NotContains(t, got[1], "label")
	})

	t.Run("ndjson", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, infos(), Options{Mode: ModeNDJSON}))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		var row format.Info
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &row))
		assert.True(t, row.ID.IsZero())
	})

	t.Run("pretty unstyled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, infos()[:1], Options{Mode: ModePretty}))
		out := buf.String()
		assert.Contains(t, out, "ID:      AAECAwQFBgcI\n")
		assert.Contains(t, out, "Random:  0405060708\n")
		assert.Contains(t, out, "Label:   fixture\n")
	})
}
