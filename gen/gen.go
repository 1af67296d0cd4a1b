// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package gen generates the FromFile method that implements fromfile.Loadable.
//
// The generated method is identical to the one written by hand,
// so generating it is optional.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Directive marks a struct type for generation when no type names are given.
const Directive = "//fromfile:generate"

// Config describes what to generate.
type Config struct {
	// Filename is the Go source file declaring the types.
	Filename string
	// Source is the content of Filename. If nil, Filename is read from disk.
	Source []byte
	// Types are the names of the struct types to generate for.
	// If empty, every struct type annotated with Directive is used.
	Types []string
}

// Generate parses the source file and returns the formatted Go file that
// declares FromFile for each selected type, in the same package.
func Generate(config Config) ([]byte, error) {
	fset := token.NewFileSet()
	var src any
	if config.Source != nil {
		src = config.Source
	}
	file, err := parser.ParseFile(fset, config.Filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", config.Filename, err)
	}

	types, err := selectTypes(file, config.Types)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, errNoTypes
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, struct {
		Package string
		Types   []typeInfo
	}{
		Package: file.Name.Name,
		Types:   types,
	}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	return code, nil
}

type typeInfo struct {
	Name     string
	Receiver string
}

type declaration struct {
	spec      *ast.TypeSpec
	annotated bool
}

//nolint:cyclop
func selectTypes(file *ast.File, names []string) ([]typeInfo, error) {
	var declarations []declaration
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec) //nolint:forcetypeassert
			doc := typeSpec.Doc
			if doc == nil && !genDecl.Lparen.IsValid() {
				doc = genDecl.Doc
			}
			declarations = append(declarations, declaration{spec: typeSpec, annotated: hasDirective(doc)})
		}
	}

	if len(names) == 0 {
		var types []typeInfo
		for _, decl := range declarations {
			if !decl.annotated {
				continue
			}
			if err := checkStruct(decl.spec); err != nil {
				return nil, err
			}
			types = append(types, newTypeInfo(decl.spec.Name.Name))
		}

		return types, nil
	}

	types := make([]typeInfo, 0, len(names))
	for _, name := range names {
		index := -1
		for i, decl := range declarations {
			if decl.spec.Name.Name == name {
				index = i

				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("type %s: %w", name, errTypeNotFound)
		}
		if err := checkStruct(declarations[index].spec); err != nil {
			return nil, err
		}
		types = append(types, newTypeInfo(name))
	}

	return types, nil
}

func checkStruct(spec *ast.TypeSpec) error {
	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		return fmt.Errorf("type %s: %w", spec.Name.Name, errGeneric)
	}
	if _, ok := spec.Type.(*ast.StructType); !ok {
		return fmt.Errorf("type %s: %w", spec.Name.Name, errNotStruct)
	}

	return nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, comment := range doc.List {
		if strings.TrimSpace(comment.Text) == Directive {
			return true
		}
	}

	return false
}

func newTypeInfo(name string) typeInfo {
	first, _ := utf8.DecodeRuneInString(name)
	receiver := string(unicode.ToLower(first))
	if receiver == name {
		receiver = "recv"
	}

	return typeInfo{Name: name, Receiver: receiver}
}

//nolint:gochecknoglobals
var (
	errNoTypes      = errors.New("no type to generate")
	errTypeNotFound = errors.New("not found")
	errNotStruct    = errors.New("not a struct type")
	errGeneric      = errors.New("generic type is not supported")

	fileTemplate = template.Must(template.New("fromfile").Parse(`// Code generated by fromfile-gen. DO NOT EDIT.

package {{ .Package }}

import "github.com/nil-go/fromfile"
{{ range .Types }}
var _ fromfile.Loadable = (*{{ .Name }})(nil)

// FromFile loads {{ .Name }} from the JSON or YAML file referenced by input.
func ({{ .Receiver }} *{{ .Name }}) FromFile(input string, opts ...fromfile.Option) error {
	return fromfile.LoadInto(input, {{ .Receiver }}, opts...)
}
{{ end }}`))
)
