// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/fromfile"
)

func BenchmarkLoad(b *testing.B) {
	for _, input := range []string{"testdata/person.json", "testdata/person.yaml"} {
		input := input

		b.Run(input, func(b *testing.B) {
			var (
				person Person
				err    error
			)
			for i := 0; i < b.N; i++ {
				person, err = fromfile.Load[Person](input)
			}
			b.StopTimer()

			require.NoError(b, err)
			require.Equal(b, "Shane", person.Name)
		})
	}
}

func BenchmarkLoadMerged(b *testing.B) {
	inputs := []string{"testdata/base.yaml", "testdata/override.json"}

	var (
		app App
		err error
	)
	for i := 0; i < b.N; i++ {
		app, err = fromfile.LoadMerged[App](inputs)
	}
	b.StopTimer()

	require.NoError(b, err)
	require.Equal(b, "example.com", app.Server.Host)
}
