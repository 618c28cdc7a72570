// Package cli is the lint driver behind the kyanite binary: it walks
// file trees, fans files out to parser workers, applies config, and
// renders results.
package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/config"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/linter"
	"github.com/kyanite-dev/kyanite/internal/parser"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// Directories never descended into, regardless of config.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

var lintableExts = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".mts": true,
	".cts": true,
}

// Runner lints file trees. One Runner serves a whole invocation;
// each worker it spawns owns a private parser, arena, and bag, so
// files are processed without shared mutable state.
type Runner struct {
	Config   *config.Config
	Registry *linter.Registry
	// Workers is the lint parallelism. Zero means GOMAXPROCS.
	Workers int
	Log     *logrus.Logger
}

// Result is the outcome of linting one file.
type Result struct {
	Path        string
	Size        int64
	File        *span.File
	Diagnostics []diagnostics.Diagnostic
}

// Summary aggregates a whole lint run.
type Summary struct {
	Files    int
	Bytes    int64
	Duration time.Duration
	Errors   int
	Warnings int
	Results  []Result
}

// Failed reports whether the run should exit nonzero.
func (s *Summary) Failed() bool {
	return s.Errors > 0
}

func (r *Runner) log() *logrus.Logger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// LintPaths expands paths into lintable files and lints them in
// parallel. Results come back sorted by path.
func (r *Runner) LintPaths(paths []string) (*Summary, error) {
	if err := r.Config.CheckEngine(Version); err != nil {
		return nil, err
	}
	files, err := r.collectFiles(paths)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	jobs := make(chan string)
	var (
		mu       sync.Mutex
		results  []Result
		firstErr error
	)
	var wg sync.WaitGroup
	for i := 0; i < r.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lint := r.newLinter()
			for path := range jobs {
				res, err := r.lintFile(lint, path)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, res)
				}
				mu.Unlock()
			}
		}()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return r.summarize(results, time.Since(start)), nil
}

// LintFile lints a single file with a fresh linter. Watch mode uses
// it for incremental re-lints.
func (r *Runner) LintFile(path string) (Result, error) {
	return r.lintFile(r.newLinter(), path)
}

func (r *Runner) newLinter() *linter.Linter {
	l := linter.New(r.Registry)
	for id, rc := range r.Config.Rules {
		switch rc.Severity {
		case config.SeverityAllow:
			l.Disable(id)
		case config.SeverityWarn:
			l.SetSeverity(id, diagnostics.SeverityWarning)
		case config.SeverityDeny:
			l.SetSeverity(id, diagnostics.SeverityError)
		}
	}
	return l
}

func (r *Runner) lintFile(lint *linter.Linter, path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "read %s", path)
	}
	r.log().WithField("path", path).Debug("linting")

	file := span.NewFile(path, string(src))
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, optionsFor(path)).Parse()
	lint.Run(file, program, bag)

	return Result{
		Path:        path,
		Size:        int64(len(src)),
		File:        file,
		Diagnostics: bag.Diagnostics(),
	}, nil
}

// optionsFor picks the grammar per file extension: .ts/.mts/.cts get
// the TypeScript extensions, .cjs parses as a script, everything
// else as a module.
func optionsFor(path string) parser.Options {
	ext := strings.ToLower(filepath.Ext(path))
	opts := parser.Options{SourceType: ast.SourceModule}
	switch ext {
	case ".ts", ".mts", ".cts":
		opts.TypeScript = true
	case ".cjs":
		opts.SourceType = ast.SourceScript
	}
	return opts
}

func (r *Runner) summarize(results []Result, took time.Duration) *Summary {
	s := &Summary{
		Files:    len(results),
		Duration: took,
		Results:  results,
	}
	for _, res := range results {
		s.Bytes += res.Size
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case diagnostics.SeverityError:
				s.Errors++
			case diagnostics.SeverityWarning:
				s.Warnings++
			}
		}
	}
	return s
}

// collectFiles expands the given paths into the sorted set of
// lintable files beneath them. Explicitly named files are always
// included; directory walks filter by extension and ignore rules.
func (r *Runner) collectFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", path)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		root := path
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && (skipDirs[d.Name()] || r.ignored(root, p)) {
					return filepath.SkipDir
				}
				return nil
			}
			if lintableExts[strings.ToLower(filepath.Ext(p))] && !r.ignored(root, p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", root)
		}
	}
	sort.Strings(files)
	return files, nil
}

// ignored matches a path against the config's ignore patterns.
// Patterns match the path relative to the walk root; a trailing
// "/**" matches the whole subtree.
func (r *Runner) ignored(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range r.Config.Ignore {
		if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
			if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
