// Package jsonio provides trivial stream adapters over the json5 package's
// in-memory Parse/Format pair: read a stream to a string, parse it; format a
// value, write the string. Load/dump are trivial adapters over
// parse/format -- this package is that adapter, not a second codec.
package jsonio

import (
	"fmt"
	"io"

	json5 "github.com/qvecs/go-json5"
)

// Load reads all of r and parses it as JSON5.
func Load(r io.Reader) (json5.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return json5.Null, fmt.Errorf("jsonio: read: %w", err)
	}
	return json5.Parse(string(data))
}

// Dump formats v and writes the result to w. indent follows [json5.Format]'s
// convention (negative means compact).
func Dump(w io.Writer, v json5.Value, indent int) error {
	s, err := json5.Format(v, indent)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("jsonio: write: %w", err)
	}
	return nil
}
