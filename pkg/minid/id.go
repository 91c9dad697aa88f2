package minid

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"time"
)

const (
	// Size is the length of an ID in bytes.
	Size = 9
	// EncodedLen is the length of an ID's text form.
	EncodedLen = 12

	randomSize = Size - SeedSize
)

var encoding = base64.RawURLEncoding

// ID is a 9-byte identifier: [4 bytes big-endian seed][5 bytes random].
// The zero value is a valid ID whose text form is "AAAAAAAAAAAA".
type ID [Size]byte

// Nil is the all-zero ID.
var Nil ID

// New builds an ID from seed and 5 bytes of the process-wide random source.
// It panics if the random source fails, which only happens when the host is
// unable to supply entropy at all.
func New(seed Seed) ID {
	id, err := NewWithReader(seed, rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("minid: random source failed: %v", err))
	}
	return id
}

// NewWithReader builds an ID from seed and 5 bytes read from r.
func NewWithReader(seed Seed, r io.Reader) (ID, error) {
	var id ID
	sb := seed.Bytes()
	copy(id[:SeedSize], sb[:])
	if _, err := io.ReadFull(r, id[SeedSize:]); err != nil {
		return Nil, fmt.Errorf("read random tail: %w", err)
	}
	return id, nil
}

// FromBytes wraps raw bytes as an ID.
func FromBytes(b [Size]byte) ID { return ID(b) }

// FromSlice copies b into an ID. b must be exactly Size bytes long.
func FromSlice(b []byte) (ID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("minid: %d bytes: %w", len(b), ErrWrongLength)
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// Parse decodes the base64url (no padding) text form of an ID.
//
// Input with characters outside the base64url alphabet, including '=' padding
// and line breaks, fails with ErrInvalidEncoding. Input that decodes to
// anything other than 9 bytes fails with ErrWrongLength. Both are wrapped in a
// *ParseError.
func Parse(text string) (ID, error) {
	for i := 0; i < len(text); i++ {
		if !isURLAlphabet(text[i]) {
			return Nil, &ParseError{Input: text, Err: ErrInvalidEncoding}
		}
	}
	if len(text) == EncodedLen {
		var id ID
		if _, err := encoding.Decode(id[:], []byte(text)); err != nil {
			return Nil, &ParseError{Input: text, Err: ErrInvalidEncoding}
		}
		return id, nil
	}
	decoded, err := encoding.DecodeString(text)
	if err != nil {
		return Nil, &ParseError{Input: text, Err: ErrInvalidEncoding}
	}
	return Nil, &ParseError{Input: text, Err: fmt.Errorf("decoded %d bytes: %w", len(decoded), ErrWrongLength)}
}

// MustParse is like Parse but panics on error.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseLenient is the opt-in lenient conversion: text that fails to parse
// yields Nil instead of an error.
func ParseLenient(text string) ID {
	id, err := Parse(text)
	if err != nil {
		return Nil
	}
	return id
}

func isURLAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

// String returns the 12-character base64url text form.
func (i ID) String() string {
	var buf [EncodedLen]byte
	encoding.Encode(buf[:], i[:])
	return string(buf[:])
}

// Array returns the raw bytes by value.
func (i ID) Array() [Size]byte { return i }

// Bytes returns a copy of the raw bytes.
func (i ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, i[:])
	return b
}

// Hex returns the raw bytes as lowercase hex.
func (i ID) Hex() string { return hex.EncodeToString(i[:]) }

// Seed returns the seed stored in the first 4 bytes.
func (i ID) Seed() Seed {
	return Seed{value: binary.BigEndian.Uint32(i[:SeedSize])}
}

// Time returns the second the ID was seeded with.
func (i ID) Time() time.Time { return i.Seed().Time() }

// Random returns the 5-byte random tail.
func (i ID) Random() [randomSize]byte {
	var r [randomSize]byte
	copy(r[:], i[SeedSize:])
	return r
}

// IsZero reports whether i is Nil.
func (i ID) IsZero() bool { return i == Nil }

// Equal reports whether i and other hold the same bytes.
func (i ID) Equal(other ID) bool { return i == other }

// Compare returns -1, 0 or 1 based on lexicographic byte order.
func (i ID) Compare(other ID) int { return bytes.Compare(i[:], other[:]) }

// Less reports whether i sorts before other.
func (i ID) Less(other ID) bool { return i.Compare(other) < 0 }

// Sort orders ids lexicographically in place.
func Sort(ids []ID) {
	slices.SortFunc(ids, func(a, b ID) int { return a.Compare(b) })
}

// MarshalText implements encoding.TextMarshaler.
func (i ID) MarshalText() ([]byte, error) {
	b := make([]byte, EncodedLen)
	encoding.Encode(b, i[:])
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parse errors are
// returned unchanged; there is no fallback to Nil.
func (i *ID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (i ID) MarshalBinary() ([]byte, error) { return i.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *ID) UnmarshalBinary(data []byte) error {
	id, err := FromSlice(data)
	if err != nil {
		return err
	}
	*i = id
	return nil
}
