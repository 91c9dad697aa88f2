// Package minid provides a small, URL-safe unique identifier.
//
// # Format
//
// An ID is 9 bytes: [4 bytes seed][5 bytes random]. The seed is the number of
// whole seconds since the Unix epoch, truncated to 32 bits and written
// big-endian, so byte-wise comparison orders IDs by the second they were
// minted. Within the same second the order is decided by the random tail and
// carries no chronological meaning.
//
// The text form is base64url without padding. 9 bytes are exactly 72 bits,
// which is 12 base64 symbols with no remainder, so every ID encodes to a
// 12-character string and padding never appears.
//
// Usage
//
//	g := minid.NewGenerator()
//	id := g.Generate()
//	s := id.String()          // "AAECAwQFBgcI"-style text
//	back, err := minid.Parse(s)
//
// Serialization bindings for GraphQL, database/sql and protobuf live in the
// gqlscalar, minidsql and minidpb subpackages. JSON works through the
// encoding.TextMarshaler implementation on ID.
package minid
