// Package form binds the WebApp input fields to typed records.
//
// Binding happens once, against a webapp.Document: every field the form needs
// must exist or binding fails. Reading a bound form yields a domain record
// whose presence rules are checked by Missing.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"fuelform/internal/webapp"
)

// ErrFieldNotBound is returned when the document lacks a required field.
var ErrFieldNotBound = errors.New("form field not bound")

// BindError lists the field ids that could not be bound.
type BindError struct {
	Fields []string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFieldNotBound, strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrFieldNotBound.
func (e *BindError) Is(target error) bool {
	return target == ErrFieldNotBound
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report DOM ids instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// bind resolves ids against doc. It fails listing every id doc lacks.
func bind(doc webapp.Document, ids []string) (map[string]webapp.Field, error) {
	fields := make(map[string]webapp.Field, len(ids))
	var missing []string
	for _, id := range ids {
		f, ok := doc.Field(id)
		if !ok || f == nil {
			missing = append(missing, id)
			continue
		}
		fields[id] = f
	}
	if len(missing) > 0 {
		return nil, &BindError{Fields: missing}
	}
	return fields, nil
}

// Missing returns the ids of required fields that are empty in record,
// in declaration order. record must be a struct or a pointer to one.
func Missing(record any) ([]string, error) {
	err := validate.Struct(record)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing, nil
}
