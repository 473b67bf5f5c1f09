package java

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidElement matches the errors factories return for rule violations.
var ErrInvalidElement = errors.New("invalid element")

// ValidationError reports the attributes that broke a construction rule.
type ValidationError struct {
	Kind   Kind
	Name   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid %s", e.Kind)
	if e.Name != "" {
		fmt.Fprintf(&sb, " %q", e.Name)
	}
	keys := sortedKeys(e.Fields)
	for i, k := range keys {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(k + " " + e.Fields[k])
	}
	return sb.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidElement
}

func validateElement(a *Attributes) error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("validate %s %q: %w", a.Kind, a.Name, err)
	}
	verr := &ValidationError{Kind: a.Kind, Name: a.Name, Fields: make(map[string]string)}
	for _, ve := range valErrs {
		verr.Fields[fieldPath(ve)] = formatValidationError(ve)
	}
	return verr
}

func missingAttribute(a *Attributes, field string) error {
	return &ValidationError{
		Kind:   a.Kind,
		Name:   a.Name,
		Fields: map[string]string{field: "is required"},
	}
}

func invalidKind(a *Attributes) error {
	return &ValidationError{
		Kind:   a.Kind,
		Name:   a.Name,
		Fields: map[string]string{"Kind": "must be a type kind"},
	}
}

// fieldPath strips the root struct name from the namespace so nested
// failures read as Annotations[0].Type.
func fieldPath(ve validator.FieldError) string {
	ns := ve.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ve.Field()
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Must returns v or panics if err is non-nil. It is meant for models built
// from literals, where a construction error is a programming mistake.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
