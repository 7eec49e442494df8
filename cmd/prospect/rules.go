package main

import (
	"os"

	"github.com/fwojciec/prospect/yaml"
)

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalRules(deps.Rules)
	if err != nil {
		return err
	}

	if c.File != "" {
		return os.WriteFile(c.File, data, 0o644)
	}
	_, err = deps.Stdout.Write(data)
	return err
}
