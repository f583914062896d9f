package lint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipech/readable-tailwind/internal/config"
	"github.com/pipech/readable-tailwind/internal/reflow"
)

func newTestRunner(mutate func(*config.Config)) *Runner {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	return NewRunner(cfg, nil)
}

func TestLintSource_WhitespaceOnly(t *testing.T) {
	// Two tokens fit on one line, so the layout is already canonical
	// and only the whitespace rule fires.
	src := []byte(`const x = <div className=" b  a " />;`)
	r := newTestRunner(nil)

	diags, err := r.LintSource(context.Background(), "app.jsx", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, RuleWhitespace, d.Rule)
	assert.Equal(t, "b a", d.Replacement)

	fixed := string(ApplyFixes(src, diags))
	assert.Equal(t, `const x = <div className="b a" />;`, fixed)
}

func TestLintSource_PlainLiteralKindChange(t *testing.T) {
	src := []byte(`const x = <div className="flex hover:underline" />;`)
	r := newTestRunner(nil)

	diags, err := r.LintSource(context.Background(), "app.jsx", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, RuleMultiline, d.Rule)
	assert.Equal(t, msgKindChange, d.Message)
	assert.True(t, strings.HasPrefix(d.Replacement, "{`"))
	assert.True(t, strings.HasSuffix(d.Replacement, "`}"))

	// Applying the fix yields a canonical file: a second pass is clean.
	fixed := ApplyFixes(src, diags)
	again, err := r.LintSource(context.Background(), "app.jsx", fixed)
	require.NoError(t, err)
	assert.Empty(t, again, "fixed source must lint clean, got %v", again)
}

func TestLintSource_KindChangeFixStableAtIndentBoundary(t *testing.T) {
	// The opening quote sits in the last column of an indent unit, so
	// wrapping in {`...`} pushes the backtick into the next unit. The
	// layout must target the backtick's post-fix column or the second
	// pass re-indents everything one level deeper.
	src := []byte(`const xxx = <div className="flex hover:underline" />;`)
	r := newTestRunner(nil)

	diags, err := r.LintSource(context.Background(), "app.jsx", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	require.Equal(t, RuleMultiline, diags[0].Rule)

	fixed := ApplyFixes(src, diags)
	again, err := r.LintSource(context.Background(), "app.jsx", fixed)
	require.NoError(t, err)
	assert.Empty(t, again, "fixed source must lint clean, got %s", fixed)
}

func TestLintSource_HTMLMultiline(t *testing.T) {
	src := []byte(`<div class="sm:text-lg text-sm"></div>`)
	r := newTestRunner(func(cfg *config.Config) {
		cfg.Reflow.GroupPolicy = string(reflow.GroupNewLine)
	})

	diags, err := r.LintSource(context.Background(), "index.html", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, RuleMultiline, d.Rule)
	assert.Equal(t, msgNotCanonical, d.Message)
	// HTML attributes wrap inside their own quotes; no kind change.
	assert.True(t, strings.HasPrefix(d.Replacement, "\"\n"))
	assert.True(t, strings.HasSuffix(d.Replacement, "\""))

	fixed := ApplyFixes(src, diags)
	again, err := r.LintSource(context.Background(), "index.html", fixed)
	require.NoError(t, err)
	assert.Empty(t, again, "fixed source must lint clean, got %s", fixed)
}

func TestLintSource_MultilineWhitespaceCollapse(t *testing.T) {
	// With the layout rule off, the whitespace rule collapses runs per
	// line and keeps the newline.
	src := []byte("<div class=\"  d  c\n  b  a  \"></div>")
	r := newTestRunner(func(cfg *config.Config) {
		cfg.Rules.Multiline = false
	})

	diags, err := r.LintSource(context.Background(), "index.html", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, RuleWhitespace, diags[0].Rule)
	assert.Equal(t, "d c\nb a", diags[0].Replacement)
}

func TestLintSource_SingleLineWhenMultilineDisallowed(t *testing.T) {
	src := []byte("<div class=\"  d  c\n  b  a  \"></div>")
	r := newTestRunner(func(cfg *config.Config) {
		cfg.Reflow.AllowMultiline = false
	})

	diags, err := r.LintSource(context.Background(), "index.html", src)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, `"d c b a"`, diags[0].Replacement)
}

func TestLintSource_CleanSourceHasNoFindings(t *testing.T) {
	src := []byte(`const x = <div className="b a" />;`)
	r := newTestRunner(nil)

	diags, err := r.LintSource(context.Background(), "app.jsx", src)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestRunner_RunAndFix(t *testing.T) {
	dir := t.TempDir()
	jsx := filepath.Join(dir, "app.jsx")
	require.NoError(t, os.WriteFile(jsx, []byte(`const x = <div className=" b  a " />;`), 0644))
	excluded := filepath.Join(dir, "node_modules", "pkg")
	require.NoError(t, os.MkdirAll(excluded, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(excluded, "dep.jsx"), []byte(`const y = <div className=" b  a " />;`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0644))

	r := newTestRunner(nil)

	report, err := r.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Files, "only the jsx file outside node_modules is linted")
	require.Len(t, report.Diagnostics, 1)
	assert.True(t, report.HasFindings())

	report, err = r.Fix(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesFixed)

	fixed, err := os.ReadFile(jsx)
	require.NoError(t, err)
	assert.Equal(t, `const x = <div className="b a" />;`, string(fixed))

	report, err = r.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.False(t, report.HasFindings())
}

func TestRunner_DiagnosticsSorted(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"b.html": `<main><div class=" x  y "></div><div class=" p  q "></div></main>`,
		"a.html": `<div class=" m  n "></div>`,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	r := newTestRunner(nil)
	report, err := r.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, report.Diagnostics, 3)

	assert.True(t, strings.HasSuffix(report.Diagnostics[0].Path, "a.html"))
	assert.True(t, strings.HasSuffix(report.Diagnostics[1].Path, "b.html"))
	assert.LessOrEqual(t, report.Diagnostics[1].Column, report.Diagnostics[2].Column)
}
