// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Source loads a file as a nested map[string]any,
// choosing the decoder by the file extension the same way as [Load].
//
// It satisfies the konf Loader and Watcher interfaces,
// so a file can be layered with other configuration sources.
//
// To create a new Source, call [NewSource].
type Source struct {
	path    string
	decoder decoder
	err     error
	options options
}

// NewSource creates a Source with the given input reference and Option(s).
// Errors in the input reference are returned by Source.Load.
//
// It panics if the input is empty.
func NewSource(input string, opts ...Option) Source {
	if input == "" {
		panic("cannot create Source with empty input")
	}

	return newSource(input, nil, apply(opts))
}

func newSource(input string, decoder decoder, option options) Source {
	path, err := ResolvePath(input)
	if err != nil {
		return Source{err: err, options: option}
	}
	if decoder == nil {
		if decoder, err = decoderFor(path); err != nil {
			return Source{path: path, err: err, options: option}
		}
	}

	return Source{path: path, decoder: decoder, options: option}
}

func (s Source) Load() (map[string]any, error) {
	var values map[string]any
	if err := s.unmarshal(&values); err != nil {
		return nil, err
	}
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

func (s Source) String() string {
	return "file:" + s.path
}

// unmarshal reads the file and decodes it into the value pointed to by target.
func (s Source) unmarshal(target any) error {
	if s.err != nil {
		return s.err
	}

	text, err := s.read()
	if err != nil {
		return err
	}
	if err := s.decoder(text, target, s.options.strict); err != nil {
		return serdeError(err)
	}
	if err := s.options.validateStruct(target); err != nil {
		return serdeError(err)
	}

	return nil
}

func (s Source) read() ([]byte, error) {
	var (
		file io.ReadCloser
		err  error
	)
	if s.options.fs != nil {
		file, err = s.options.fs.Open(s.path)
	} else {
		file, err = os.Open(s.path)
	}
	if err != nil {
		return nil, &Error{Kind: FileOpen, Path: s.attemptedPath(), Err: err}
	}
	defer func() {
		_ = file.Close()
	}()

	text, err := io.ReadAll(file)
	if err != nil {
		return nil, &Error{Kind: FileRead, Err: err}
	}
	if !utf8.Valid(text) {
		return nil, &Error{Kind: FileRead, Err: errInvalidUTF8}
	}

	return text, nil
}

// attemptedPath returns the path joined onto the working directory for diagnostics.
// Paths inside a fs.FS have no working directory and are returned as is.
func (s Source) attemptedPath() string {
	if s.options.fs != nil {
		return s.path
	}

	path, err := filepath.Abs(s.path)
	if err != nil {
		return s.path
	}

	return path
}

var errInvalidUTF8 = errors.New("file content is not valid UTF-8") //nolint:gochecknoglobals
