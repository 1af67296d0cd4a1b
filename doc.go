// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package fromfile loads strongly typed values from JSON and YAML files,
choosing the decoder by the file extension.

	type Person struct {
		Name string `json:"name" yaml:"name" validate:"required"`
	}

	person, err := fromfile.Load[Person]("file:conf/person.yaml")

The input is a path, optionally prefixed with a scheme like `file:` which is discarded.
Files ending with `.json` are decoded as JSON, files ending with `.yml` or `.yaml`
are decoded as YAML. Struct values are validated after decoding,
so a field tagged `validate:"required"` that is absent from the file is an error.

Every failure is an [*Error] whose [Kind] tells what went wrong.
The package never logs or exits while loading; logging only happens while watching files.

Types can also implement [Loadable], by hand with [LoadInto] or by generating the method
with cmd/fromfile-gen. [Source] exposes a file as a nested map for layering with
other configuration, and [LoadMerged] decodes several layered files into one value.
*/
package fromfile
