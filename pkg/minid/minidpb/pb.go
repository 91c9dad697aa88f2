// Package minidpb carries minid.ID over protobuf using the well-known wrapper
// messages: BytesValue for the 9-byte binary form and StringValue for the
// text form.
package minidpb

import (
	"bufio"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mithrel/minid/pkg/minid"
)

// maxMessageSize bounds a single delimited message. A BytesValue holding an
// ID is 11 bytes on the wire.
const maxMessageSize = 64

// ToBytesValue wraps the 9 raw bytes of id.
func ToBytesValue(id minid.ID) *wrapperspb.BytesValue {
	return wrapperspb.Bytes(id.Bytes())
}

// FromBytesValue reads an ID from a BytesValue holding exactly 9 bytes.
func FromBytesValue(v *wrapperspb.BytesValue) (minid.ID, error) {
	if v == nil {
		return minid.Nil, fmt.Errorf("minidpb: nil BytesValue")
	}
	id, err := minid.FromSlice(v.GetValue())
	if err != nil {
		return minid.Nil, fmt.Errorf("minidpb: %w", err)
	}
	return id, nil
}

// ToStringValue wraps the text form of id.
func ToStringValue(id minid.ID) *wrapperspb.StringValue {
	return wrapperspb.String(id.String())
}

// FromStringValue parses the text form held by v.
func FromStringValue(v *wrapperspb.StringValue) (minid.ID, error) {
	if v == nil {
		return minid.Nil, fmt.Errorf("minidpb: nil StringValue")
	}
	id, err := minid.Parse(v.GetValue())
	if err != nil {
		return minid.Nil, fmt.Errorf("minidpb: %w", err)
	}
	return id, nil
}

// Marshal encodes id as a serialized BytesValue.
func Marshal(id minid.ID) ([]byte, error) {
	return proto.Marshal(ToBytesValue(id))
}

// Unmarshal decodes a serialized BytesValue.
func Unmarshal(b []byte) (minid.ID, error) {
	var v wrapperspb.BytesValue
	if err := proto.Unmarshal(b, &v); err != nil {
		return minid.Nil, err
	}
	return FromBytesValue(&v)
}

// Encoder writes varint length-prefixed BytesValue messages.
type Encoder struct{ w io.Writer }

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes id as one length-prefixed message.
func (e *Encoder) Encode(id minid.ID) error {
	_, err := protodelim.MarshalTo(e.w, ToBytesValue(id))
	return err
}

// Decoder reads messages written by Encoder. It returns io.EOF once the
// stream ends cleanly between messages.
type Decoder struct{ r *bufio.Reader }

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: bufio.NewReader(r)} }

// Decode reads the next ID from the stream.
func (d *Decoder) Decode() (minid.ID, error) {
	var v wrapperspb.BytesValue
	opts := protodelim.UnmarshalOptions{MaxSize: maxMessageSize}
	if err := opts.UnmarshalFrom(d.r, &v); err != nil {
		return minid.Nil, err
	}
	return FromBytesValue(&v)
}
