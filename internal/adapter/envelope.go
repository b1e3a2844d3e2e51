package adapter

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/MKhiriev/go-lab-access/models"
)

// rawEnvelope keeps every envelope key undecoded so that a backend sending
// `"success":1` or a non-string message is still understood.
type rawEnvelope struct {
	Success json.RawMessage `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
}

// settleEnvelope applies the canonical unwrapping rule to a raw envelope:
// a truthy "success" with a "data" key resolves to that value (even null),
// without it to the whole envelope, anything else is an [ApplicationError].
// Input that is not a JSON object counts as a failure without a message.
func settleEnvelope(raw json.RawMessage) (json.RawMessage, error) {
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ApplicationError{Message: models.DefaultFailureMessage}
	}

	if !truthy(env.Success) {
		return nil, &ApplicationError{Message: failureMessage(env.Message)}
	}

	if env.Data != nil {
		return env.Data, nil
	}

	return bytes.Clone(raw), nil
}

// truthy follows JavaScript truthiness for a JSON value. An absent value is
// falsy.
func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}

	switch v[0] {
	case 'n', 'f':
		return false
	case '"':
		return !bytes.Equal(v, []byte(`""`))
	case '{', '[', 't':
		return true
	}

	n, err := strconv.ParseFloat(string(v), 64)
	return err == nil && n != 0
}

// failureMessage turns the "message" value into error text. Strings are
// used as they are, other truthy values as their JSON text.
func failureMessage(v json.RawMessage) string {
	if !truthy(v) {
		return models.DefaultFailureMessage
	}

	var text string
	if err := json.Unmarshal(v, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, v); err != nil {
		return models.DefaultFailureMessage
	}
	return compact.String()
}

// isEnvelope reports whether raw is a JSON object carrying a boolean
// "success" key.
func isEnvelope(raw json.RawMessage) bool {
	var shape struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return false
	}
	return shape.Success != nil
}
