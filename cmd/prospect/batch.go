package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/batch"
)

// Scanner sizing for JSONL input: scraped pages can run to megabytes of
// HTML on one line.
const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 16 * 1024 * 1024
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	pages, err := readPages(f)
	if err != nil {
		return err
	}

	proc := &batch.Processor{
		Engine:      deps.Engine,
		Concurrency: c.Concurrency,
	}

	var progress batch.ProgressFunc
	if deps.Logger != nil {
		progress = func(event batch.ProgressEvent) {
			deps.Logger.Debug("batch progress",
				"completed", event.Completed,
				"total", event.Total,
				"url", event.URL,
				"found", event.Found,
			)
		}
	}

	result, err := proc.Process(deps.Ctx, pages, progress)
	if err != nil {
		return err
	}

	if c.JSON {
		prospects := result.Prospects
		if prospects == nil {
			prospects = []batch.Prospect{}
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(prospects)
	}

	for _, p := range result.Prospects {
		printCandidate(deps.Stdout, &p.Candidate)
	}
	fmt.Fprintf(deps.Stdout, "%d prospects from %d pages (%d pages skipped, %d duplicates merged)\n",
		len(result.Prospects), result.PagesProcessed, result.PagesSkipped, result.Duplicates)
	return nil
}

// readPages parses JSONL input: one page object per line, blank lines
// ignored.
func readPages(r io.Reader) ([]*prospect.RawPage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scanBufferSize), maxLineSize)

	var pages []*prospect.RawPage
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		page := &prospect.RawPage{}
		if err := json.Unmarshal(line, page); err != nil {
			return nil, prospect.Errorf(prospect.EINVALID, "line %d: %v", lineNo, err)
		}
		pages = append(pages, page)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// printCandidate writes one prospect as a text row.
func printCandidate(w io.Writer, c *prospect.Candidate) {
	fmt.Fprintf(w, "%3d  %s", c.Confidence, c.Name)
	if c.Title != "" {
		fmt.Fprintf(w, "  %s", c.Title)
	}
	if c.Company != "" {
		fmt.Fprintf(w, "  %s", c.Company)
	}
	if c.Email != "" {
		fmt.Fprintf(w, "  %s", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(w, "  %s", c.Phone)
	}
	if c.LinkedInURL != "" {
		fmt.Fprintf(w, "  %s", c.LinkedInURL)
	}
	fmt.Fprintln(w)
}
