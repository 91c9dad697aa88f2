package format

import (
	"encoding/json"
	"io"
)

// WriteNDJSON writes one JSON object per line.
func WriteNDJSON(w io.Writer, infos []Info) error {
	enc := json.NewEncoder(w)
	for _, in := range infos {
		if err := enc.Encode(in); err != nil {
			return err
		}
	}
	return nil
}
