package format

import (
	"encoding/json"
	"io"
)

func WriteJSON(w io.Writer, infos []Info, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(infos)
}
