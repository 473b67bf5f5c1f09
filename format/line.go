package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/lby1992/JavaCodeGenerator/java"
)

// LineEncoder writes one tab-separated line per element:
//
//	kind  path  type  visibility  modifiers  detail
//
// path joins the names of the enclosing types with dots. detail is the
// parameter list of methods and constructors, the initializer of fields,
// and the supertypes of types. Empty columns are written as "-".
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(el java.Element) error {
	text, err := e.Marshal(el)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) Marshal(el java.Element) ([]byte, error) {
	var sb strings.Builder
	var path []string
	err := java.Walk(el, func(el java.Element, depth int) error {
		path = append(path[:depth], el.Name())
		name := strings.Join(path, ".")
		if t, ok := el.(*java.Type); ok && depth == 0 {
			name = t.QualifiedName()
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%s\t%s\n",
			el.Kind(),
			name,
			orDash(el.ReturnType()),
			orDash(el.Visibility().String()),
			orDash(strings.Join(modifiers(el), ",")),
			orDash(lineDetail(el)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func lineDetail(el java.Element) string {
	switch el := el.(type) {
	case *java.Type:
		var parts []string
		if ext := el.ExtendedClass(); ext != "" {
			parts = append(parts, "extends "+ext)
		}
		if ifaces := el.ImplementedInterfaces(); len(ifaces) > 0 {
			parts = append(parts, "implements "+strings.Join(ifaces, ","))
		}
		return strings.Join(parts, " ")
	case *java.Method, *java.Constructor:
		return parameterList(parametersOf(el))
	case *java.Field:
		if v := el.InitializationValue(); v != "" {
			return "= " + v
		}
	}
	return ""
}
