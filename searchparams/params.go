package searchparams

// ParamMap holds flat navigation parameters: parameter name to an ordered
// list of string values. Scalar parameters are single-element lists. A key
// mapped to an empty list, or to a single empty string, is treated as unset
// everywhere: it is omitted from canonical keys and compares equal to an
// absent key.
type ParamMap map[string][]string

// Get returns the first value for name, or "" when the parameter is unset.
func (m ParamMap) Get(name string) string {
	vs := m[name]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Has reports whether name carries a set (non-empty) value.
func (m ParamMap) Has(name string) bool {
	return !isUnset(m[name])
}

// Set assigns a single scalar value to name.
func (m ParamMap) Set(name, value string) {
	m[name] = []string{value}
}

// SetList assigns an ordered list of values to name.
func (m ParamMap) SetList(name string, values ...string) {
	m[name] = append([]string(nil), values...)
}

// Clone returns a deep copy of the map. A nil receiver clones to an empty,
// usable map.
func (m ParamMap) Clone() ParamMap {
	out := make(ParamMap, len(m))
	for name, vs := range m {
		out[name] = cloneValues(vs)
	}
	return out
}

// Merge returns base overridden by override: every key present in override
// replaces the base value, including keys whose override value is unset.
// An unset override entry therefore shadows the base value, which is how a
// client removes a page-provided parameter without a navigation.
func Merge(base, override ParamMap) ParamMap {
	merged := base.Clone()
	for name, vs := range override {
		merged[name] = cloneValues(vs)
	}
	return merged
}

// Diff returns the parameters whose value changed between prev and next.
// Changed keys map to their new value; keys that became unset map to nil.
// List values compare by deep positional equality: two lists are equal iff
// they have the same length and the same elements in the same order.
func Diff(prev, next ParamMap) ParamMap {
	changed := ParamMap{}
	for name, nv := range next {
		if valuesEqual(prev[name], nv) {
			continue
		}
		if isUnset(nv) {
			changed[name] = nil
		} else {
			changed[name] = cloneValues(nv)
		}
	}
	for name, pv := range prev {
		if _, ok := next[name]; ok {
			continue
		}
		if isUnset(pv) {
			continue
		}
		changed[name] = nil
	}
	return changed
}

// valuesEqual implements the deep sequence equality rule used by Diff.
// All unset forms (nil, empty list, single empty string) compare equal.
func valuesEqual(a, b []string) bool {
	if isUnset(a) || isUnset(b) {
		return isUnset(a) && isUnset(b)
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isUnset(vs []string) bool {
	return len(vs) == 0 || (len(vs) == 1 && vs[0] == "")
}

func cloneValues(vs []string) []string {
	if vs == nil {
		return nil
	}
	return append([]string(nil), vs...)
}
