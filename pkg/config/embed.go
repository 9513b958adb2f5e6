package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultRules []byte

// DefaultRules returns the built-in module rules applied when a
// configuration provides none.
func DefaultRules() ([]interface{}, error) {
	return LoadRulesetBytes(defaultRules, "toml")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
