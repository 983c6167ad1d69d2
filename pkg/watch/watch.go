// Package watch implements the `--watch` flag shared by dingoc's
// subcommands: re-run a function whenever its input changes. Both
// subcommands pass a single input file and share the same loop.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Run watches path (a file or a directory) and calls fn once immediately,
// then again every time fsnotify reports a write or create event
// underneath path, until ctx is cancelled. For a file, its containing
// directory is watched, so a write or create of any file in that
// directory also triggers fn. fn's own errors are reported
// via onError rather than stopping the loop — a bad edit shouldn't kill
// watch mode.
func Run(ctx context.Context, path string, fn func() error, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, path); err != nil {
		return err
	}

	if err := fn(); err != nil {
		onError(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := fn(); err != nil {
				onError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("watch: %w", err))
		}
	}
}

// addRecursive registers path (and, if it is a directory, every
// subdirectory beneath it) with watcher. fsnotify only watches the
// directories it is explicitly told about, not their descendants.
func addRecursive(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
