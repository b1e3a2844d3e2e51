package backend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

// param returns the value under key as text. Remote calls deliver every
// value as a string; bridged calls keep native JSON types, so numbers and
// booleans are formatted the way they appear on the query string.
func param(p models.Params, key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func paramInt64(p models.Params, key string) (int64, error) {
	raw := param(p, key)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", errInvalidParam, key)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidParam, key, raw)
	}
	return id, nil
}

func paramInt(p models.Params, key string) (int, error) {
	id, err := paramInt64(p, key)
	return int(id), err
}
