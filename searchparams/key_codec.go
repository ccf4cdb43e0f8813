package searchparams

import (
	"net/url"
	"sort"
	"strings"
)

// KeyCodec builds the canonical string keys derived from a parameter map:
// the visited key covering every parameter, and per-fragment cache keys
// covering a declared subset. Implementations must be deterministic and
// construction-order independent: the same effective parameter set always
// yields the same key.
type KeyCodec interface {
	VisitedKey(m ParamMap) string
	CacheKey(m ParamMap, used []string) string
}

// defaultKeyCodec canonicalizes by dropping unset entries, sorting by
// parameter name, and joining key=value pairs with "&". List values are
// appended positionally under the same name.
type defaultKeyCodec struct{}

// NewDefaultKeyCodec creates the default key codec.
func NewDefaultKeyCodec() KeyCodec {
	return &defaultKeyCodec{}
}

// VisitedKey serializes the full parameter map to its canonical form.
func (c *defaultKeyCodec) VisitedKey(m ParamMap) string {
	return canonical(m, nil)
}

// CacheKey serializes the parameter map restricted to the used names.
func (c *defaultKeyCodec) CacheKey(m ParamMap, used []string) string {
	if used == nil {
		used = []string{}
	}
	return canonical(m, used)
}

// canonical builds the sorted key=value&... form. A nil filter means all
// names; an empty filter means none. Names and values are query-escaped so
// reserved characters inside a value can never collide with the key of a
// different parameter set.
func canonical(m ParamMap, filter []string) string {
	var names []string
	if filter == nil {
		for name := range m {
			if m.Has(name) {
				names = append(names, name)
			}
		}
	} else {
		seen := make(map[string]struct{}, len(filter))
		for _, name := range filter {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if m.Has(name) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		for _, v := range m[name] {
			if v == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// EncodeQuery renders the set parameters as a URL query string. Encoding
// goes through net/url, which sorts by key, so the output is deterministic.
func EncodeQuery(m ParamMap) string {
	values := url.Values{}
	for name, vs := range m {
		if isUnset(vs) {
			continue
		}
		for _, v := range vs {
			if v == "" {
				continue
			}
			values.Add(name, v)
		}
	}
	return values.Encode()
}

// DecodeQuery parses a URL query string into a ParamMap.
func DecodeQuery(query string) (ParamMap, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	m := make(ParamMap, len(values))
	for name, vs := range values {
		m[name] = append([]string(nil), vs...)
	}
	return m, nil
}

// PathWithQuery replaces the query portion of path with the encoded
// parameters. A parameter map with nothing set yields the bare path.
func PathWithQuery(path string, m ParamMap) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	query := EncodeQuery(m)
	if query == "" {
		return path
	}
	return path + "?" + query
}
