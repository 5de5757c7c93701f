package pretty

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML schema for an injectable rule table:
//
//	rules:
//	  - prefix: github.com/purpleposeidon/ezty/collections.
//	    alias: Vec
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// ParseRules parses a YAML rule table. Declaration order is preserved.
func ParseRules(data []byte) ([]Rule, error) {
	var rf ruleFile

	err := yaml.Unmarshal(data, &rf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	for i, r := range rf.Rules {
		if r.Prefix == "" {
			return nil, fmt.Errorf("rule %d: empty prefix", i)
		}
	}

	return rf.Rules, nil
}

// LoadRules loads and parses a YAML rule table from the given path.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	return ParseRules(data)
}
