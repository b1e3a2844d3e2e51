package adapter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

// buildRequestURL composes base?path=<path>&callback=<token>&k=v...
// Parameters follow in key order. Every component is percent-encoded the way
// encodeURIComponent does (spaces as %20).
func buildRequestURL(base, path, token string, params models.Params) string {
	var sb strings.Builder
	sb.WriteString(base)
	if strings.Contains(base, "?") {
		sb.WriteByte('&')
	} else {
		sb.WriteByte('?')
	}

	sb.WriteString("path=")
	sb.WriteString(encodeComponent(path))
	sb.WriteString("&callback=")
	sb.WriteString(encodeComponent(token))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteByte('&')
		sb.WriteString(encodeComponent(k))
		sb.WriteByte('=')
		sb.WriteString(encodeComponent(formatParam(params[k])))
	}

	return sb.String()
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// formatParam renders a parameter value as an opaque string. Scalars use
// their plain text form, lists are comma-joined and any other composite is
// sent as compact JSON.
func formatParam(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatParam(item)
		}
		return strings.Join(parts, ",")
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}
