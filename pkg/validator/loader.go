package validator

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Field     string `yaml:"field"`
	Required  bool   `yaml:"required"`
	MinLength int    `yaml:"min_length"`
	Pattern   string `yaml:"pattern"`
}

// LoadRules reads a YAML rule table:
//
//	rules:
//	  - field: name
//	    required: true
//	    min_length: 2
//	    pattern: '^[a-zA-Z\s]+$'
//
// Patterns are compiled up front; a bad pattern or a repeated field fails the load.
func LoadRules(r io.Reader) (RuleTable, error) {
	var file ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrRulesNotLoaded, err)
	}

	table := make(RuleTable, len(file.Rules))
	for i, entry := range file.Rules {
		if entry.Field == "" {
			return nil, fmt.Errorf("%w: rules[%d] has no field", ErrInvalidRule, i)
		}
		if _, ok := table[entry.Field]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, entry.Field)
		}
		if entry.MinLength < 0 {
			return nil, fmt.Errorf("%w: %s: negative min_length", ErrInvalidRule, entry.Field)
		}

		rule := FieldRule{Required: entry.Required, MinLength: entry.MinLength}
		if entry.Pattern != "" {
			re, err := regexp.Compile(entry.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRule, entry.Field, err)
			}
			rule.Pattern = re
		}
		table[entry.Field] = rule
	}
	return table, nil
}
