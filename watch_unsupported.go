// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package fromfile

import (
	"context"
	"log/slog"
	"runtime"
)

func watchFile(ctx context.Context, path string, logger *slog.Logger, _ func() error, _ func()) error {
	logger.WarnContext(ctx, "Watching file is not supported on "+runtime.GOOS+".", "file", path)

	return nil
}
