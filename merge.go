// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/fromfile/internal/maps"
)

// LoadMerged loads every file referenced by inputs and decodes the merged content into
// a new value of type T. Each file takes precedence over the files before it;
// nested maps are merged key by key and keys are matched case-insensitively.
//
// Fields are matched by the struct tag given by [WithTagName], `json` by default.
// String values are converted to durations, comma separated slices
// and encoding.TextUnmarshaler where the field requires.
func LoadMerged[T any](inputs []string, opts ...Option) (T, error) {
	option := apply(opts)

	values := make(map[string]any)
	for _, input := range inputs {
		source := newSource(input, nil, option)
		var document map[string]any
		if err := source.unmarshal(&document); err != nil {
			return *new(T), err
		}
		maps.Merge(values, document, strings.ToLower)
	}

	var value T
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           &value,
			WeaklyTypedInput: true,
			DecodeHook:       defaultDecodeHook,
			TagName:          option.tagName,
			ErrorUnused:      option.strict,
		},
	)
	if err != nil {
		return *new(T), serdeError(err)
	}
	if err := decoder.Decode(values); err != nil {
		return *new(T), serdeError(err)
	}
	if err := option.validateStruct(&value); err != nil {
		return *new(T), serdeError(err)
	}

	return value, nil
}

//nolint:gochecknoglobals
var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
