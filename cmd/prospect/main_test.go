package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/batch"
	main "github.com/fwojciec/prospect/cmd/prospect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"extract", "batch", "rules"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "extract")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("extracts from a markdown file as json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.md")
		content := "Jane Doe\nVP of Engineering\nAcme Corp\njane@acme.com"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"extract", "--url", "https://acme.com/team", "--markdown", path, "--json",
		}, stdout, stderr)
		require.NoError(t, err)

		var found []prospect.Candidate
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &found))
		require.Len(t, found, 1)
		assert.Equal(t, "Jane Doe", found[0].Name)
		assert.Equal(t, "VP of Engineering", found[0].Title)
		assert.Equal(t, "Acme Corp", found[0].Company)
		assert.Equal(t, "jane@acme.com", found[0].Email)
		assert.Equal(t, "https://acme.com/team", found[0].SourceURL)
		assert.Equal(t, 90, found[0].Confidence)
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.md")
		require.NoError(t, os.WriteFile(path, []byte("Contact Us\nPrivacy Policy"), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"extract", "--url", "https://acme.com/contact", "--markdown", path,
		}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No prospects found.")
	})

	t.Run("requires content", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"extract", "--url", "https://acme.com/team",
		}, stdout, stderr)
		require.Error(t, err)
		assert.Equal(t, prospect.EINVALID, prospect.ErrorCode(err))
	})
}

func TestCmdBatch(t *testing.T) {
	t.Parallel()

	t.Run("merges prospects across pages", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pages.jsonl")
		content := `{"url": "https://acme.com/team", "markdown": "Jane Doe\nVP of Engineering\nAcme Corp\njane@acme.com"}

{"url": "https://acme.com/about", "markdown": "Jane Doe\nVP of Engineering\nAcme Corp\njane@acme.com"}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"batch", path, "--json"}, stdout, stderr)
		require.NoError(t, err)

		var prospects []batch.Prospect
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &prospects))
		require.Len(t, prospects, 1)
		assert.Equal(t, "Jane Doe", prospects[0].Name)
		assert.NotEmpty(t, prospects[0].ID)
	})

	t.Run("prints a summary in text mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pages.jsonl")
		content := `{"url": "https://acme.com/team", "markdown": "Jane Doe\nVP of Engineering\nAcme Corp\njane@acme.com"}
{"url": "https://acme.com/team", "markdown": "Jane Doe\nVP of Engineering\nAcme Corp\njane@acme.com"}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"batch", path}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Jane Doe")
		assert.Contains(t, stdout.String(), "1 prospects from 1 pages (1 pages skipped, 0 duplicates merged)")
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pages.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"batch", path}, stdout, stderr)
		require.Error(t, err)
		assert.Equal(t, prospect.EINVALID, prospect.ErrorCode(err))
	})
}

func TestCmdRules(t *testing.T) {
	t.Parallel()

	t.Run("prints effective rules as yaml", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"rules"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "deny_names:")
		assert.Contains(t, stdout.String(), "title_keywords:")
		assert.Contains(t, stdout.String(), "linkedin.com")
	})

	t.Run("reflects override file", func(t *testing.T) {
		t.Parallel()

		overrides := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(overrides, []byte("profile_hosts:\n  - xing.com\n"), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--rules", overrides, "rules"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "xing.com")
		assert.NotContains(t, stdout.String(), "linkedin.com")
	})

	t.Run("writes rules to a file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out.yaml")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"rules", "--file", out}, stdout, stderr)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "deny_names:")
		assert.Empty(t, stdout.String())
	})

	t.Run("missing override file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--rules", "/nonexistent/rules.yaml", "rules"}, stdout, stderr)
		require.Error(t, err)
		assert.Equal(t, prospect.ENOTFOUND, prospect.ErrorCode(err))
	})
}
