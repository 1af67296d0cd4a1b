// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/fromfile"
)

func TestSource_Watch(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		action      func(string) error
		expected    map[string]any
	}{
		{
			description: "write",
			action: func(path string) error {
				return os.WriteFile(path, []byte(`{"p": {"k": "c"}}`), 0o600)
			},
			expected: map[string]any{"p": map[string]any{"k": "c"}},
		},
		{
			description: "remove",
			action:      os.Remove,
		},
	}

	for _, testcase := range testcases {
		testcase := testcase

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			temp, err := os.MkdirTemp("", "*") // t.TempDir() causes deadlock on macos.
			require.NoError(t, err)
			defer func() {
				_ = os.RemoveAll(temp)
			}()
			path := filepath.Join(temp, "watch.json")
			require.NoError(t, os.WriteFile(path, []byte(`{"p": {"k": "v"}}`), 0o600))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			values := make(chan map[string]any)
			done := make(chan error)
			source := fromfile.NewSource(path, fromfile.WithLogger(discard()))
			go func() {
				done <- source.Watch(ctx, func(changed map[string]any) {
					select {
					case values <- changed:
					case <-ctx.Done():
					}
				})
			}()
			time.Sleep(time.Second) // wait for the watcher to start

			require.NoError(t, testcase.action(path))
			require.Equal(t, testcase.expected, receive(t, values))
			cancel()
			require.NoError(t, receive(t, done))
		})
	}
}

func TestWatch(t *testing.T) {
	t.Parallel()

	temp, err := os.MkdirTemp("", "*") // t.TempDir() causes deadlock on macos.
	require.NoError(t, err)
	defer func() {
		_ = os.RemoveAll(temp)
	}()
	path := filepath.Join(temp, "person.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Shane\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	people := make(chan Person)
	done := make(chan error)
	go func() {
		done <- fromfile.Watch(ctx, path, func(person Person) {
			select {
			case people <- person:
			case <-ctx.Done():
			}
		}, fromfile.WithLogger(discard()))
	}()
	time.Sleep(time.Second) // wait for the watcher to start

	// Fails validation so it is logged instead of delivered.
	require.NoError(t, os.WriteFile(path, []byte("age: 30\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("name: Ren\n"), 0o600))

	require.Equal(t, Person{Name: "Ren"}, receive(t, people))
	cancel()
	require.NoError(t, receive(t, done))
}

func TestWatch_everyWrite(t *testing.T) {
	t.Parallel()

	temp, err := os.MkdirTemp("", "*") // t.TempDir() causes deadlock on macos.
	require.NoError(t, err)
	defer func() {
		_ = os.RemoveAll(temp)
	}()
	path := filepath.Join(temp, "person.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Shane\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	people := make(chan Person)
	done := make(chan error)
	go func() {
		done <- fromfile.Watch(ctx, path, func(person Person) {
			select {
			case people <- person:
			case <-ctx.Done():
			}
		}, fromfile.WithLogger(discard()))
	}()
	time.Sleep(time.Second) // wait for the watcher to start

	// os.WriteFile truncates before writing, so the file is briefly empty on every write.
	for _, name := range []string{"Ren", "Ada", "Lin", "Max", "Zoe"} {
		require.NoError(t, os.WriteFile(path, []byte("name: "+name+"\n"), 0o600))
		require.Equal(t, Person{Name: name}, receive(t, people))
	}
	cancel()
	require.NoError(t, receive(t, done))
}

func TestWatch_error(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		input       string
		opts        []fromfile.Option
		err         string
	}{
		{
			description: "invalid input",
			input:       "a:b:c.json",
			err:         "fromfile: invalid input",
		},
		{
			description: "invalid extension",
			input:       "testdata/person.txt",
			err:         "fromfile: invalid extension",
		},
		{
			description: "fs",
			input:       "person.json",
			opts:        []fromfile.Option{fromfile.WithFS(fstest.MapFS{})},
			err:         "cannot watch file in fs.FS",
		},
		{
			description: "file not found",
			input:       "testdata/not_found.json",
			err:         "eval symlink: ",
		},
	}

	for _, testcase := range testcases {
		testcase := testcase

		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			err := fromfile.Watch(context.Background(), testcase.input, func(Person) {}, testcase.opts...)
			require.ErrorContains(t, err, testcase.err)
		})
	}
}

func TestWatch_nilContext(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot watch change with nil context", func() {
		//nolint:staticcheck
		_ = fromfile.Watch[Person](nil, "testdata/person.json", func(Person) {})
	})
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case value := <-ch:
		return value
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for watch")

		return *new(T)
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
