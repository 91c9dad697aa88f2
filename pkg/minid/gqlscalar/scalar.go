// Package gqlscalar binds minid.ID to a GraphQL scalar.
//
// ID implements the gqlgen marshaler contract (MarshalGQL/UnmarshalGQL), so
// it can be mapped in gqlgen.yml:
//
//	models:
//	  MinimalId:
//	    model: github.com/mithrel/minid/pkg/minid/gqlscalar.ID
//
// and declared in the schema with
//
//	"A small, unique ID that works for most use-cases"
//	scalar MinimalId
package gqlscalar

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mithrel/minid/pkg/minid"
)

const (
	// Name is the scalar's schema name.
	Name = "MinimalId"
	// Description is the scalar's schema description.
	Description = "A small, unique ID that works for most use-cases"
)

// ID is a minid.ID that serializes as a GraphQL string scalar.
type ID minid.ID

// From converts a core ID.
func From(id minid.ID) ID { return ID(id) }

// MinID returns the core ID.
func (i ID) MinID() minid.ID { return minid.ID(i) }

func (i ID) String() string { return minid.ID(i).String() }

// MarshalGQL writes the quoted text form.
func (i ID) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, strconv.Quote(minid.ID(i).String()))
}

// UnmarshalGQL decodes an input value. Only strings are accepted and parse
// errors are returned as-is.
func (i *ID) UnmarshalGQL(v any) error {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return fmt.Errorf("%s must be a string, got %T", Name, v)
	}
	id, err := minid.Parse(s)
	if err != nil {
		return err
	}
	*i = ID(id)
	return nil
}
