package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/engine"
	prosslog "github.com/fwojciec/prospect/slog"
	"github.com/fwojciec/prospect/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prospect"),
		kong.Description("Extract people records from scraped team pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prospect --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load heuristic vocabularies: compiled defaults, optionally patched
	// from a YAML override file.
	rules := prospect.DefaultRules()
	if cli.RulesFile != "" {
		rules, err = yaml.LoadRules(cli.RulesFile)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: run 'prospect rules' to see the expected file shape")
			return err
		}
	}
	deps.Rules = rules

	// Wire the extraction engine, with logging decorators when verbose.
	eng := engine.New(rules)
	deps.Engine = eng
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		eng.Primary = prosslog.NewLoggingStrategy(eng.Primary, logger)
		eng.Blocks = prosslog.NewLoggingStrategy(eng.Blocks, logger)
		eng.Structured = prosslog.NewLoggingStrategy(eng.Structured, logger)
		eng.Fallback = prosslog.NewLoggingStrategy(eng.Fallback, logger)
		deps.Engine = prosslog.NewLoggingEngine(eng, logger)
		deps.Logger = logger
	}

	return kongCtx.Run(deps)
}
