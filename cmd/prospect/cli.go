package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/prospect"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Rules  *prospect.RuleSet
	Engine prospect.Engine
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract prospects from a single page"`
	Batch   BatchCmd   `cmd:"" help:"Extract and merge prospects from a JSONL page export"`
	Rules   RulesCmd   `cmd:"" help:"Print the effective heuristic rule sets as YAML"`

	RulesFile string `name:"rules" env:"PROSPECT_RULES" help:"YAML file with rule-set overrides"`
	Verbose   bool   `short:"v" help:"Log strategy selection and per-page results"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `required:"" help:"Source URL recorded on extracted prospects"`
	Markdown string `type:"existingfile" help:"File with the page's markdown content"`
	HTML     string `name:"html" type:"existingfile" help:"File with the page's raw HTML"`
	JSON     bool   `help:"Emit JSON instead of a text table"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Input       string `arg:"" type:"existingfile" help:"JSONL file with one page object (url, markdown, html) per line"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent extraction limit"`
	JSON        bool   `help:"Emit JSON instead of a text table"`
}

// RulesCmd is the "rules" subcommand.
type RulesCmd struct {
	File string `help:"Write the rules to a file instead of stdout"`
}
