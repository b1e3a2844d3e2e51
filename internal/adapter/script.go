package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
)

var errNotACallbackScript = errors.New("response is not a callback invocation")

// callbackScript matches `name(<argument>)` with an optional `/**/` guard,
// an optional `typeof name === 'function' &&` guard and a trailing semicolon.
var callbackScript = regexp.MustCompile(
	`(?s)^\s*(?:/\*\*/\s*)?(?:typeof\s+[A-Za-z_$][\w$]*\s*===?\s*['"]function['"]\s*&&\s*)?([A-Za-z_$][\w$]*)\s*\((.*)\)\s*;?\s*$`,
)

// parseCallbackScript extracts the callee and its single argument from a
// script body returned by the backend. An empty argument list yields a nil
// argument.
func parseCallbackScript(body []byte) (string, json.RawMessage, error) {
	m := callbackScript.FindSubmatch(body)
	if m == nil {
		return "", nil, errNotACallbackScript
	}

	arg := bytes.TrimSpace(m[2])
	if len(arg) == 0 {
		return string(m[1]), nil, nil
	}

	return string(m[1]), json.RawMessage(bytes.Clone(arg)), nil
}
