// Package render defines the structured result of a fragment render and its
// snapshot wire form. Cached entries hold encoded snapshots rather than live
// values, so cache identity is well-defined and callers can never mutate a
// cached render in place.
package render

import "github.com/vmihailenco/msgpack/v5"

// Output is the resolved result of rendering a server fragment: the markup
// payload plus optional resolved data the fragment wants to expose.
type Output struct {
	HTML string            `msgpack:"html" json:"html"`
	Data map[string]string `msgpack:"data,omitempty" json:"data,omitempty"`
}

// IsZero reports whether the output carries no content.
func (o Output) IsZero() bool {
	return o.HTML == "" && len(o.Data) == 0
}

// Encode serializes the output to its msgpack snapshot form.
func Encode(o Output) ([]byte, error) {
	return msgpack.Marshal(o)
}

// Decode restores an output from its snapshot form.
func Decode(snapshot []byte) (Output, error) {
	var o Output
	if err := msgpack.Unmarshal(snapshot, &o); err != nil {
		return Output{}, err
	}
	return o, nil
}
