// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fromfile

import (
	"errors"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// validateStruct validates the decoded value if it is a struct (or points to one)
// so that constraints like `validate:"required"` reject incomplete files.
// Struct types with no exported fields to validate, like time.Time, pass as is.
func (o options) validateStruct(value any) error {
	if o.skipValidation {
		return nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || rv.Type().ConvertibleTo(timeType) {
		return nil
	}

	err := o.validate.Struct(rv.Interface())
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	return err //nolint:wrapcheck
}

var timeType = reflect.TypeOf(time.Time{}) //nolint:gochecknoglobals
