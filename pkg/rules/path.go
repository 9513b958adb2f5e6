package rules

import "strings"

// PropertyPath identifies the record attribute a condition applies to:
// either a single top-level attribute or an ordered sequence of nested
// attribute names. The two cases are explicit so resolution never probes
// the path representation at runtime.
type PropertyPath struct {
	segments []string
}

// Property returns a single-segment path for a top-level attribute.
func Property(name string) PropertyPath {
	return PropertyPath{segments: []string{name}}
}

// NestedProperty returns a multi-segment path walking nested mappings.
func NestedProperty(names ...string) PropertyPath {
	segments := make([]string, len(names))
	copy(segments, names)
	return PropertyPath{segments: segments}
}

// Segments returns a copy of the path segments.
func (p PropertyPath) Segments() []string {
	segments := make([]string, len(p.segments))
	copy(segments, p.segments)
	return segments
}

// String returns the dotted form of the path.
func (p PropertyPath) String() string {
	return strings.Join(p.segments, ".")
}

// Resolve looks the path up in a record. ok is false when the attribute is
// absent: a missing key, a nil value, a missing intermediate mapping, or
// an intermediate that is not a mapping at all.
func (p PropertyPath) Resolve(rec Record) (value interface{}, ok bool) {
	if len(p.segments) == 1 {
		v, present := rec[p.segments[0]]
		if !present || v == nil {
			return nil, false
		}
		return v, true
	}

	var current interface{} = map[string]interface{}(rec)
	for _, segment := range p.segments {
		m, isMap := asMapping(current)
		if !isMap {
			return nil, false
		}
		next, present := m[segment]
		if !present || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// asMapping normalizes the two mapping shapes a record value can carry.
func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Record:
		return m, true
	default:
		return nil, false
	}
}
