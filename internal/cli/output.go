package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

func writeJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// not JSON; print as received
		buf.Reset()
		buf.Write(raw)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func writeValue(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return writeJSON(w, raw)
}

// parseParams turns key=value arguments into a parameter object. Values are
// kept as text, the form they take on the query string.
func parseParams(args []string) (models.Params, error) {
	params := make(models.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, arg)
		}
		params[key] = value
	}
	return params, nil
}
