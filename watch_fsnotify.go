// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !appengine && (darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package fromfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

//nolint:cyclop
func watchFile(ctx context.Context, path string, logger *slog.Logger, reload func() error, removed func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			logWarn(ctx, logger, "Error when closing file watcher.", path, e)
		}
	}()

	// Watch the parent directory so that atomic replaces and symlink swaps are seen.
	dir := filepath.Dir(path)
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("eval symlink: %w", err)
	}
	realPath = filepath.Clean(realPath)
	path = filepath.Clean(path)

	// Writes usually arrive as several events (truncate, then write), so reload once
	// the events for the file have settled rather than on each of them.
	var (
		timer  *time.Timer
		settle <-chan time.Time
	)
	stop := func() {
		if timer != nil && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		settle = nil
	}
	defer stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name := filepath.Clean(event.Name); name != realPath && name != path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				stop()
				logWarn(ctx, logger, "File has been removed.", path, nil)
				removed()
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				stop()
				if timer == nil {
					timer = time.NewTimer(settleDelay)
				} else {
					timer.Reset(settleDelay)
				}
				settle = timer.C
			}

		case <-settle:
			settle = nil
			if err := reload(); err != nil {
				logWarn(ctx, logger, "Error when reloading file.", path, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logWarn(ctx, logger, "Error when watching file.", path, err)

		case <-ctx.Done():
			return nil
		}
	}
}

const settleDelay = 100 * time.Millisecond
