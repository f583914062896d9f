// Package lint runs the reflow engine over source files and reports
// diagnostics with automatic fixes. Literals are processed
// independently and statelessly, so files fan out across workers with
// no ordering requirement between them.
package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pipech/readable-tailwind/internal/config"
	"github.com/pipech/readable-tailwind/internal/extract"
	"github.com/pipech/readable-tailwind/internal/reflow"
)

// Runner lints files against the resolved configuration.
type Runner struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRunner creates a Runner. The configuration is read once here and
// treated as immutable for the Runner's lifetime.
func NewRunner(cfg *config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log}
}

// Report summarizes one run.
type Report struct {
	Files       int
	Errored     int
	FilesFixed  int
	Diagnostics []Diagnostic
}

// HasFindings reports whether any diagnostics were produced.
func (r *Report) HasFindings() bool {
	return len(r.Diagnostics) > 0
}

// Run lints every file reachable from paths in parallel and returns
// the combined report, diagnostics ordered by path and position.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	return r.run(ctx, paths, false)
}

// Fix lints like Run but also applies every automatic fix, rewriting
// the affected files in place.
func (r *Runner) Fix(ctx context.Context, paths []string) (*Report, error) {
	return r.run(ctx, paths, true)
}

func (r *Runner) run(ctx context.Context, paths []string, apply bool) (*Report, error) {
	files, err := r.collectFiles(paths)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for _, path := range files {
		path := path
		eg.Go(func() error {
			diags, fixed, err := r.processFile(egCtx, path, apply)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.log.Warn("skipping file", zap.String("path", path), zap.Error(err))
				report.Errored++
				return nil
			}
			report.Files++
			report.Diagnostics = append(report.Diagnostics, diags...)
			if fixed {
				report.FilesFixed++
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Diagnostics, func(i, j int) bool {
		a, b := report.Diagnostics[i], report.Diagnostics[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return report, nil
}

func (r *Runner) processFile(ctx context.Context, path string, apply bool) ([]Diagnostic, bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file: %w", err)
	}

	diags, err := r.LintSource(ctx, path, src)
	if err != nil {
		return nil, false, err
	}
	if !apply || len(diags) == 0 {
		return diags, false, nil
	}

	fixed := ApplyFixes(src, diags)
	if err := os.WriteFile(path, fixed, 0644); err != nil {
		return nil, false, fmt.Errorf("failed to write fixes: %w", err)
	}
	r.log.Debug("applied fixes",
		zap.String("path", path),
		zap.Int("fixes", len(diags)))
	return diags, true, nil
}

// LintSource lints one file's contents and returns its diagnostics.
func (r *Runner) LintSource(ctx context.Context, path string, src []byte) ([]Diagnostic, error) {
	ex := extract.New(r.cfg.Files.Attributes, r.cfg.Files.Callees)
	defer ex.Close()

	lits, err := ex.Extract(ctx, path, src)
	if err != nil {
		return nil, err
	}

	opts := r.cfg.ReflowOptions()
	var diags []Diagnostic
	for _, lit := range lits {
		if d, ok := r.checkLiteral(path, lit, opts); ok {
			diags = append(diags, d)
		}
	}
	return diags, nil
}

// checkLiteral runs the enabled rules over one literal. At most one
// diagnostic is produced per literal; the layout rule takes precedence
// so its fix never races the whitespace fix over the same span.
func (r *Runner) checkLiteral(path string, lit extract.Literal, opts reflow.Options) (Diagnostic, bool) {
	if len(reflow.SplitTokens(lit.Content)) == 0 {
		return Diagnostic{}, false
	}

	base := Diagnostic{
		Path:   path,
		Line:   lit.Line + 1,
		Column: lit.Column + 1,
	}

	if r.cfg.Rules.Multiline {
		meta := lit.Boundary()
		if lit.WrapExpression {
			// The {...} container shifts the opening backtick one
			// column right; lay out against the post-fix position so a
			// second pass computes the same indentation.
			meta.StartColumn++
		}
		res := reflow.Reflow(lit.Content, meta, opts)
		if res.Changed {
			d := base
			d.Rule = RuleMultiline
			d.Message = msgNotCanonical
			d.Start, d.End = lit.Start, lit.End
			d.Replacement = res.Text
			if lit.Kind == reflow.KindPlain && strings.Contains(res.Text, "\n") {
				d.Message = msgKindChange
				if lit.WrapExpression {
					d.Replacement = "{" + d.Replacement + "}"
				}
			}
			return d, true
		}
	}

	// The whitespace rule stays away from content the layout rule has
	// already shaped across lines; reflowed layout carries indentation
	// the normalizer would strip.
	if r.cfg.Rules.Whitespace && (!r.cfg.Rules.Multiline || !strings.Contains(lit.Content, "\n")) {
		allowMultiline := lit.Kind == reflow.KindTemplate && r.cfg.Reflow.AllowMultiline
		res := reflow.NormalizeWhitespace(lit.Content, allowMultiline)
		if res.Changed {
			d := base
			d.Rule = RuleWhitespace
			d.Message = msgWhitespace
			d.Start, d.End = lit.ContentStart, lit.ContentEnd
			d.Replacement = res.Text
			return d, true
		}
	}

	return Diagnostic{}, false
}

// collectFiles expands the given paths into the lintable files beneath
// them, honoring the configured extensions and exclusions. Explicitly
// named files are taken as-is when a grammar exists for them.
func (r *Runner) collectFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if extract.Supported(path) {
				add(path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if r.cfg.Excluded(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if r.cfg.WantsExtension(p) && extract.Supported(p) && !r.cfg.Excluded(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}
	sort.Strings(files)
	return files, nil
}
