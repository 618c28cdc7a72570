package cli

import (
	"context"
	"crypto/sha256"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// watchCacheSize bounds the content-hash cache. Old entries just
// cause a redundant re-lint, so eviction is harmless.
const watchCacheSize = 4096

// Watch lints the given paths once, then re-lints files as they
// change until ctx is cancelled. A content-hash cache suppresses
// re-lints for saves that did not change the file.
func (r *Runner) Watch(ctx context.Context, paths []string, w io.Writer, jsonOut bool) error {
	summary, err := r.LintPaths(paths)
	if err != nil {
		return err
	}
	if err := r.report(w, summary, jsonOut); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "start watcher")
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchTree(watcher, path); err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		if err := addWatchTree(watcher, "."); err != nil {
			return err
		}
	}

	cache, err := lru.New[string, [sha256.Size]byte](watchCacheSize)
	if err != nil {
		return errors.Wrap(err, "create watch cache")
	}
	for _, res := range summary.Results {
		cache.Add(res.Path, sha256.Sum256([]byte(res.File.Src)))
	}

	log := r.log()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := r.handleEvent(event, watcher, cache, w, jsonOut); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}

func (r *Runner) handleEvent(event fsnotify.Event, watcher *fsnotify.Watcher, cache *lru.Cache[string, [sha256.Size]byte], w io.Writer, jsonOut bool) error {
	log := r.log()
	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		cache.Remove(event.Name)
		return nil
	case event.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return addWatchTree(watcher, event.Name)
		}
	case !event.Has(fsnotify.Write):
		return nil
	}
	if !lintableExts[strings.ToLower(filepath.Ext(event.Name))] {
		return nil
	}

	src, err := os.ReadFile(event.Name)
	if err != nil {
		// The file may already be gone again; editors do this.
		log.WithError(err).Debug("skipping changed file")
		return nil
	}
	hash := sha256.Sum256(src)
	if prev, ok := cache.Get(event.Name); ok && prev == hash {
		log.WithField("path", event.Name).Debug("content unchanged, skipping")
		return nil
	}
	cache.Add(event.Name, hash)

	res, err := r.LintFile(event.Name)
	if err != nil {
		return err
	}
	return r.report(w, r.summarize([]Result{res}, 0), jsonOut)
}

func (r *Runner) report(w io.Writer, s *Summary, jsonOut bool) error {
	if jsonOut {
		return WriteJSON(w, s)
	}
	return WriteText(w, s)
}

func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "stat %s", root)
	}
	if !info.IsDir() {
		return errors.Wrapf(watcher.Add(filepath.Dir(root)), "watch %s", root)
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return errors.Wrapf(watcher.Add(p), "watch %s", p)
	})
}
