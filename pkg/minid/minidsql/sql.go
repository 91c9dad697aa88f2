// Package minidsql binds minid.ID to database/sql.
//
// IDs are stored as their 12-character text form so they stay readable in
// TEXT columns. Scan also accepts a raw 9-byte BLOB. The base64url alphabet
// is not in ASCII order, so ORDER BY on the text column does not follow
// minid.ID.Compare; sort in Go when order matters.
package minidsql

import (
	"database/sql/driver"
	"fmt"

	"github.com/mithrel/minid/pkg/minid"
)

// ID is a minid.ID usable as a query argument and scan destination.
type ID minid.ID

// Value implements driver.Valuer.
func (i ID) Value() (driver.Value, error) {
	return minid.ID(i).String(), nil
}

// Scan implements sql.Scanner. NULL is an error; use NullID for nullable
// columns.
func (i *ID) Scan(src any) error {
	if src == nil {
		return fmt.Errorf("minidsql: cannot scan NULL into ID")
	}
	id, err := scan(src)
	if err != nil {
		return err
	}
	*i = ID(id)
	return nil
}

// NullID is an ID that may be NULL.
type NullID struct {
	ID    minid.ID
	Valid bool
}

// Value implements driver.Valuer.
func (n NullID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ID.String(), nil
}

// Scan implements sql.Scanner.
func (n *NullID) Scan(src any) error {
	if src == nil {
		n.ID, n.Valid = minid.Nil, false
		return nil
	}
	id, err := scan(src)
	if err != nil {
		return err
	}
	n.ID, n.Valid = id, true
	return nil
}

func scan(src any) (minid.ID, error) {
	switch v := src.(type) {
	case string:
		return parse(v)
	case []byte:
		if len(v) == minid.Size {
			return minid.FromSlice(v)
		}
		return parse(string(v))
	default:
		return minid.Nil, fmt.Errorf("minidsql: cannot scan %T into ID", src)
	}
}

func parse(s string) (minid.ID, error) {
	id, err := minid.Parse(s)
	if err != nil {
		return minid.Nil, fmt.Errorf("minidsql: %w", err)
	}
	return id, nil
}
