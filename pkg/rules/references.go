package rules

// References collects named configuration payloads contributed by handlers
// during compilation, typically to deduplicate identical option objects.
// It grows monotonically while a rule set is being compiled and is frozen
// when Compile returns; afterwards it is read-only and safe to share
// across concurrent classification calls.
type References struct {
	values map[string]interface{}
	order  []string
	frozen bool
}

func newReferences() *References {
	return &References{values: make(map[string]interface{})}
}

// Add stores a payload under the given key. Adding to a frozen References
// is a handler defect and panics.
func (r *References) Add(key string, value interface{}) {
	if r.frozen {
		panic("rules: References modified after compilation finished")
	}
	if _, exists := r.values[key]; !exists {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

// Get returns the payload stored under key.
func (r *References) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has checks whether a payload is stored under key.
func (r *References) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns all keys in insertion order.
func (r *References) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of stored payloads.
func (r *References) Len() int {
	return len(r.values)
}

func (r *References) freeze() {
	r.frozen = true
}
