// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

// Kind classifies why loading a file failed.
type Kind uint8

const (
	// InvalidInput means the input reference has more than one `:` delimiter.
	InvalidInput Kind = iota + 1
	// InvalidExtension means the file extension is missing or not one of json, yml and yaml.
	InvalidExtension
	// FileOpen means the file could not be opened.
	FileOpen
	// FileRead means the opened file could not be read as text.
	FileRead
	// SerdeError means the decoder rejected the content for the target type.
	SerdeError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvalidExtension:
		return "InvalidExtension"
	case FileOpen:
		return "FileOpen"
	case FileRead:
		return "FileRead"
	case SerdeError:
		return "SerdeError"
	default:
		return "Unknown"
	}
}

// Error is the error returned by every operation in this package.
//
// Use [errors.Is] with the Err* sentinels to check its kind,
// or [errors.As] to access the attempted path and the decoder message.
type Error struct {
	Kind Kind
	// Path is the attempted path for FileOpen.
	Path string
	// Message is the decoder diagnostic for SerdeError.
	Message string
	// Err is the underlying error if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidInput:
		return "fromfile: invalid input"
	case InvalidExtension:
		return "fromfile: invalid extension"
	case FileOpen:
		return "fromfile: couldn't open " + e.Path
	case FileRead:
		return "fromfile: read file"
	case SerdeError:
		return "fromfile: decode: " + e.Message
	default:
		return "fromfile: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind,
// so that errors.Is(err, ErrFileOpen) matches regardless of path or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error) //nolint:errorlint
	if !ok || t == nil {
		return false
	}

	return t.Kind == e.Kind
}

//nolint:gochecknoglobals
var (
	ErrInvalidInput     = &Error{Kind: InvalidInput}
	ErrInvalidExtension = &Error{Kind: InvalidExtension}
	ErrFileOpen         = &Error{Kind: FileOpen}
	ErrFileRead         = &Error{Kind: FileRead}
	ErrSerde            = &Error{Kind: SerdeError}
)

func serdeError(err error) *Error {
	return &Error{Kind: SerdeError, Message: err.Error(), Err: err}
}
