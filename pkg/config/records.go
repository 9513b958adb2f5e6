package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/rules"
)

// LoadRecords reads classification records from a YAML file (JSON being a
// YAML subset, .json files work too). The document must be a list of
// mappings, one record per module to classify.
func LoadRecords(path string) ([]rules.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read records file %s", path)
	}

	var raw []map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse records file %s", path)
	}

	// yaml.v3 already decodes nested mappings as map[string]interface{},
	// which is exactly the shape PropertyPath resolution walks.
	records := make([]rules.Record, 0, len(raw))
	for _, m := range raw {
		records = append(records, rules.Record(m))
	}
	return records, nil
}
