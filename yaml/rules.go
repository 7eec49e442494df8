// Package yaml loads heuristic vocabulary overrides from configuration
// files. The compiled defaults drift out of sync with real-world page
// content over time, so deployments patch individual lists without a
// rebuild.
package yaml

import (
	"os"

	"github.com/fwojciec/prospect"
	"github.com/goccy/go-yaml"
)

// LoadRules reads a rule-set override file and merges it onto the compiled
// defaults. A list present in the file replaces the default list wholesale;
// a list absent from the file keeps its default.
func LoadRules(path string) (*prospect.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, prospect.Errorf(prospect.ENOTFOUND, "rules file %q not found", path)
		}
		return nil, err
	}

	rules := prospect.DefaultRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, prospect.Errorf(prospect.EINVALID, "parse rules file %q: %v", path, err)
	}
	return rules, nil
}

// MarshalRules renders a rule set as YAML in the same shape LoadRules
// accepts.
func MarshalRules(rules *prospect.RuleSet) ([]byte, error) {
	return yaml.Marshal(rules)
}
