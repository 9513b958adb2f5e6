package config

import (
	"path/filepath"
	"regexp"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/logging"
)

// LoadRuleset loads the `rules` list from a TOML or YAML ruleset file and
// normalizes it into the raw rule shape the compiler consumes.
func LoadRuleset(path string) ([]interface{}, error) {
	logger := logging.GetLogger("config.loader")

	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse ruleset file %s", path)
	}

	list, err := rulesFromTree(k.Raw(), path)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(list)).
		Msg("Loaded ruleset file")

	return list, nil
}

// LoadRulesetBytes parses an in-memory ruleset document. The format is
// given as "toml" or "yaml".
func LoadRulesetBytes(data []byte, format string) ([]interface{}, error) {
	var parser koanf.Parser
	switch format {
	case "toml":
		parser = toml.Parser()
	case "yaml", "yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported ruleset format %q", format)
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse ruleset document")
	}

	return rulesFromTree(k.Raw(), "<bytes>")
}

// rulesFromTree extracts and normalizes the `rules` list from a parsed
// configuration tree.
func rulesFromTree(tree map[string]interface{}, source string) ([]interface{}, error) {
	raw, ok := tree["rules"]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigLoad, "ruleset %s has no 'rules' list", source)
	}

	list, ok := normalizeValue(raw).([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigLoad, "'rules' in %s must be a list", source)
	}

	return list, nil
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported ruleset file extension %q", filepath.Ext(path))
	}
}

// normalizeValue canonicalizes a parsed configuration value: slices become
// []interface{}, mappings become map[string]interface{}, and the reserved
// single-key `{ regex = "..." }` mapping becomes a compiled regexp.
func normalizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		if re, ok := regexCondition(value); ok {
			return re
		}
		m := make(map[string]interface{}, len(value))
		for k, item := range value {
			m[k] = normalizeValue(item)
		}
		return m
	case []interface{}:
		list := make([]interface{}, len(value))
		for i, item := range value {
			list[i] = normalizeValue(item)
		}
		return list
	case []map[string]interface{}:
		list := make([]interface{}, len(value))
		for i, item := range value {
			list[i] = normalizeValue(item)
		}
		return list
	default:
		return v
	}
}

// regexCondition recognizes the `{ regex = "..." }` condition form. An
// unparsable pattern is left untouched so the compiler reports it with
// its rule path.
func regexCondition(m map[string]interface{}) (*regexp.Regexp, bool) {
	if len(m) != 1 {
		return nil, false
	}
	pattern, ok := m["regex"].(string)
	if !ok {
		return nil, false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}
