// Package format renders a java element tree for inspection: as
// tab-separated lines, JSON, YAML or a box-drawn outline. The output
// describes model attributes; it is not Java source.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/lby1992/JavaCodeGenerator/java"
)

type Encoder interface {
	Encode(e java.Element) error
}

// NewEncoder returns the encoder registered under name: line, json, yaml
// or tree.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected line, json, yaml, or tree)", name)
}

func modifiers(e java.Element) []string {
	var mods []string
	if e.IsStatic() {
		mods = append(mods, "static")
	}
	switch e.InheritModifier() {
	case java.InheritFinal, java.InheritAbstract:
		mods = append(mods, e.InheritModifier().String())
	}
	return mods
}

func parametersOf(e java.Element) []*java.Parameter {
	switch e := e.(type) {
	case *java.Method:
		return e.Parameters()
	case *java.Constructor:
		return e.Parameters()
	}
	return nil
}

func parameterList(params []*java.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.ReturnType() + " " + p.Name()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func annotationNames(anns []java.Annotation) []string {
	var names []string
	for _, a := range anns {
		names = append(names, "@"+a.Name())
	}
	return names
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
