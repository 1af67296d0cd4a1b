// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

// Loadable is the interface implemented by types that can load themselves from a file.
//
// The implementation is the same for every type, so it can be written by hand:
//
//	func (p *Person) FromFile(input string, opts ...fromfile.Option) error {
//		return fromfile.LoadInto(input, p, opts...)
//	}
//
// or generated by annotating the type with `//fromfile:generate`
// and running `go generate` with cmd/fromfile-gen.
type Loadable interface {
	FromFile(input string, opts ...Option) error
}
