// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command fromfile-gen generates the FromFile method for struct types,
// which makes them implement fromfile.Loadable.
//
// Typical usage is a go:generate directive in the file declaring the types:
//
//	//go:generate go run github.com/nil-go/fromfile/cmd/fromfile-gen
//
//	//fromfile:generate
//	type Person struct {
//		Name string `json:"name" yaml:"name"`
//	}
//
// It writes person_fromfile.go next to person.go. Use --type to select types by name
// instead of the //fromfile:generate directive.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nil-go/fromfile/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fromfile-gen: ")

	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("fromfile-gen", pflag.ContinueOnError)
	file := flags.StringP("file", "f", os.Getenv("GOFILE"), "Go source file declaring the types (default $GOFILE)")
	types := flags.StringSliceP("type", "t", nil, "comma separated type names (default types annotated with "+gen.Directive+")")
	output := flags.StringP("output", "o", "", "output file (default <file>_fromfile.go)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *file == "" {
		return errNoFile
	}
	if *output == "" {
		*output = strings.TrimSuffix(*file, ".go") + "_fromfile.go"
	}

	code, err := gen.Generate(gen.Config{Filename: *file, Types: *types})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := os.WriteFile(*output, code, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("write %s: %w", *output, err)
	}

	return nil
}

var errNoFile = errors.New("no source file: set --file or run from go generate") //nolint:gochecknoglobals
