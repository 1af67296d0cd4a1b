// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"context"
	"errors"
	"log/slog"
)

// Watch watches the file and calls onChange with the reloaded values when it changes,
// or with nil if the file has been removed.
// It blocks until ctx is done.
//
// Only files on the OS file system can be watched.
// It panics if ctx is nil.
func (s Source) Watch(ctx context.Context, onChange func(map[string]any)) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}
	if err := s.watchable(); err != nil {
		return err
	}

	return watchFile(ctx, s.path, s.options.logger.WithGroup("fromfile"),
		func() error {
			values, err := s.Load()
			if err != nil {
				return err
			}
			onChange(values)

			return nil
		},
		func() { onChange(nil) },
	)
}

// Watch watches the file referenced by input and calls onChange with a newly loaded value
// each time the file is created or written. Reload failures and removal of the file
// are logged with the logger given by [WithLogger] and do not call onChange.
// It blocks until ctx is done.
//
// Errors in input are returned before watching starts.
// It panics if ctx is nil.
func Watch[T any](ctx context.Context, input string, onChange func(T), opts ...Option) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}

	source := newSource(input, nil, apply(opts))
	if err := source.watchable(); err != nil {
		return err
	}

	return watchFile(ctx, source.path, source.options.logger.WithGroup("fromfile"),
		func() error {
			var value T
			if err := source.unmarshal(&value); err != nil {
				return err
			}
			onChange(value)

			return nil
		},
		func() {},
	)
}

func (s Source) watchable() error {
	if s.err != nil {
		return s.err
	}
	if s.options.fs != nil {
		return errWatchFS
	}

	return nil
}

var errWatchFS = errors.New("cannot watch file in fs.FS") //nolint:gochecknoglobals

func logWarn(ctx context.Context, logger *slog.Logger, message, path string, err error) {
	attrs := []slog.Attr{slog.String("file", path)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	logger.LogAttrs(ctx, slog.LevelWarn, message, attrs...)
}
