// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the file referenced by input and decodes it into a new value of type T.
// The decoder is selected by the file extension: `.json` is decoded as JSON,
// `.yml` and `.yaml` are decoded as YAML. Any other extension fails with InvalidExtension
// before the file is opened.
//
// The input is a path like `conf/app.yaml`, optionally prefixed with a scheme
// like `file:conf/app.yaml`. The scheme is discarded.
func Load[T any](input string, opts ...Option) (T, error) {
	return load[T](input, nil, opts)
}

// LoadJSON reads the file referenced by input and decodes it as JSON
// regardless of its extension.
func LoadJSON[T any](input string, opts ...Option) (T, error) {
	return load[T](input, decodeJSON, opts)
}

// LoadYAML reads the file referenced by input and decodes it as YAML
// regardless of its extension.
func LoadYAML[T any](input string, opts ...Option) (T, error) {
	return load[T](input, decodeYAML, opts)
}

// LoadInto loads the file referenced by input like [Load] and stores the result in target.
// The target is left untouched if loading fails.
//
// It is the building block for implementing [Loadable].
func LoadInto[T any](input string, target *T, opts ...Option) error {
	value, err := Load[T](input, opts...)
	if err != nil {
		return err
	}
	*target = value

	return nil
}

// DecodeJSON decodes the JSON text into a new value of type T.
func DecodeJSON[T any](text []byte, opts ...Option) (T, error) {
	return decode[T](text, decodeJSON, opts)
}

// DecodeYAML decodes the YAML text into a new value of type T.
func DecodeYAML[T any](text []byte, opts ...Option) (T, error) {
	return decode[T](text, decodeYAML, opts)
}

// ResolvePath extracts the file path from input like `conf/app.yaml` or `file:conf/app.yaml`.
// Whatever precedes the `:` is discarded without validation.
// It fails with InvalidInput if input contains more than one `:`.
func ResolvePath(input string) (string, error) {
	segments := strings.Split(input, ":")
	switch len(segments) {
	case 1:
		return segments[0], nil
	case 2: //nolint:gomnd
		return segments[1], nil
	default:
		return "", &Error{Kind: InvalidInput}
	}
}

func load[T any](input string, decoder decoder, opts []Option) (T, error) {
	var value T
	if err := newSource(input, decoder, apply(opts)).unmarshal(&value); err != nil {
		return *new(T), err
	}

	return value, nil
}

func decode[T any](text []byte, decoder decoder, opts []Option) (T, error) {
	var value T
	option := apply(opts)
	if err := decoder(text, &value, option.strict); err != nil {
		return *new(T), serdeError(err)
	}
	if err := option.validateStruct(&value); err != nil {
		return *new(T), serdeError(err)
	}

	return value, nil
}

type decoder func(text []byte, target any, strict bool) error

func decoderFor(path string) (decoder, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		// Dot files like `.json` have no extension.
		return nil, &Error{Kind: InvalidExtension}
	}

	switch strings.TrimPrefix(ext, ".") {
	case "json":
		return decodeJSON, nil
	case "yml", "yaml":
		return decodeYAML, nil
	default:
		return nil, &Error{Kind: InvalidExtension}
	}
}

func decodeJSON(text []byte, target any, strict bool) error {
	if !strict {
		return json.Unmarshal(text, target) //nolint:wrapcheck
	}

	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err //nolint:wrapcheck
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}

func decodeYAML(text []byte, target any, strict bool) error {
	decoder := yaml.NewDecoder(bytes.NewReader(text))
	decoder.KnownFields(strict)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document leaves target as zero value.
			return nil
		}

		return err //nolint:wrapcheck
	}

	var next yaml.Node
	switch err := decoder.Decode(&next); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err //nolint:wrapcheck
	default:
		return errMultipleDocuments
	}
}

//nolint:gochecknoglobals
var (
	errTrailingData      = errors.New("invalid character after top-level value")
	errMultipleDocuments = errors.New("yaml: expected a single document in the stream")
)
