package models

// Params is the parameter object passed with an operation. In remote mode
// every entry becomes a query parameter; in bridged mode the whole object
// is the single positional argument of the procedure.
type Params map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty, non-nil
// Params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// String returns the value stored under key when it is a string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}
