package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/prospect"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Markdown == "" && c.HTML == "" {
		return prospect.Errorf(prospect.EINVALID, "provide --markdown and/or --html")
	}

	page := &prospect.RawPage{SourceURL: c.URL}
	if c.Markdown != "" {
		data, err := os.ReadFile(c.Markdown)
		if err != nil {
			return err
		}
		page.Markdown = string(data)
	}
	if c.HTML != "" {
		data, err := os.ReadFile(c.HTML)
		if err != nil {
			return err
		}
		page.HTML = string(data)
	}

	found := deps.Engine.Extract(page)

	if c.JSON {
		if found == nil {
			found = []prospect.Candidate{}
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}

	if len(found) == 0 {
		fmt.Fprintln(deps.Stdout, "No prospects found.")
		return nil
	}
	for _, p := range found {
		printCandidate(deps.Stdout, &p)
	}
	return nil
}
