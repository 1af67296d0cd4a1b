// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"io/fs"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// WithFS provides the file system that files are read from.
//
// By default, files are read from the OS file system relative to the current working directory.
func WithFS(fs fs.FS) Option {
	return func(options *options) {
		options.fs = fs
	}
}

// DisallowUnknownFields makes decoding fail if the file contains fields
// that are not present in the target type.
func DisallowUnknownFields() Option {
	return func(options *options) {
		options.strict = true
	}
}

// WithValidator provides the validator used to validate struct values after decoding.
//
// By default, it uses validator.New(validator.WithRequiredStructEnabled()).
func WithValidator(validate *validator.Validate) Option {
	return func(options *options) {
		options.validate = validate
	}
}

// SkipValidation disables validation of struct values after decoding.
func SkipValidation() Option {
	return func(options *options) {
		options.skipValidation = true
	}
}

// WithTagName provides the struct tag name used while decoding merged files.
//
// The default tag name is `json`.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithLogger provides the slog.Logger used while watching files.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures how files are loaded.
	Option  func(*options)
	options struct {
		fs             fs.FS
		strict         bool
		validate       *validator.Validate
		skipValidation bool
		tagName        string
		logger         *slog.Logger
	}
)

func apply(opts []Option) options {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.validate == nil {
		option.validate = defaultValidator
	}
	if option.tagName == "" {
		option.tagName = "json"
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return *option
}

//nolint:gochecknoglobals
var defaultValidator = validator.New(validator.WithRequiredStructEnabled())
