package minidpb

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mithrel/minid/pkg/minid"
)

var fixed = minid.MustParse("AAECAwQFBgcI")

func TestWrappers(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		v := ToBytesValue(fixed)
		assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8}, v.GetValue())
		got, err := FromBytesValue(v)
		require.NoError(t, err)
		assert.Equal(t, fixed, got)

		_, err = FromBytesValue(wrapperspb.Bytes([]byte{1, 2}))
		assert.ErrorIs(t, err, minid.ErrWrongLength)
		_, err = FromBytesValue(nil)
		assert.Error(t, err)
	})

	t.Run("string", func(t *testing.T) {
		v := ToStringValue(fixed)
		assert.Equal(t, "AAECAwQFBgcI", v.GetValue())
		got, err := FromStringValue(v)
		require.NoError(t, err)
		assert.Equal(t, fixed, got)

		_, err = FromStringValue(wrapperspb.String("AAECAwQFBgc/"))
		assert.ErrorIs(t, err, minid.ErrInvalidEncoding)
	})
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(fixed)
	require.NoError(t, err)
	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	_, err = Unmarshal([]byte{0xFF})
	assert.Error(t, err)
}

func TestStream(t *testing.T) {
	g := minid.NewGenerator()
	want := []minid.ID{g.Generate(), g.Generate(), minid.Nil, fixed}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, id := range want {
		require.NoError(t, enc.Encode(id))
	}

	dec := NewDecoder(&buf)
	var got []minid.ID
	for {
		id, err := dec.Decode()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, id)
	}
	assert.Equal(t, want, got)
}
