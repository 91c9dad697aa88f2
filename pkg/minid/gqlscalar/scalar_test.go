package gqlscalar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/minid/pkg/minid"
)

func TestID_MarshalGQL(t *testing.T) {
	var buf bytes.Buffer
	From(minid.MustParse("AAECAwQFBgcI")).MarshalGQL(&buf)
	assert.Equal(t, `"AAECAwQFBgcI"`, buf.String())

	buf.Reset()
	ID{}.MarshalGQL(&buf)
	assert.Equal(t, `"AAAAAAAAAAAA"`, buf.String())
}

func TestID_UnmarshalGQL(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var id ID
		require.NoError(t, id.UnmarshalGQL("AAECAwQFBgcI"))
		assert.Equal(t, minid.MustParse("AAECAwQFBgcI"), id.MinID())
	})

	t.Run("parse errors propagate", func(t *testing.T) {
		var id ID
		assert.ErrorIs(t, id.UnmarshalGQL("AAECAwQF"), minid.ErrWrongLength)
		assert.ErrorIs(t, id.UnmarshalGQL("AAECAwQFBgc+"), minid.ErrInvalidEncoding)
		assert.True(t, id.MinID().IsZero(), "failed input must leave the value untouched")
	})

	t.Run("non-string input", func(t *testing.T) {
		var id ID
		err := id.UnmarshalGQL(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MinimalId must be a string")
	})
}
