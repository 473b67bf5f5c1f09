package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/lby1992/JavaCodeGenerator/java"
)

// TreeEncoder draws the containment tree of an element, one node per
// element labelled with its modifiers, kind and name.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(el java.Element) error {
	text, err := e.Marshal(el)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) Marshal(el java.Element) ([]byte, error) {
	root := gtree.NewRoot(treeLabel(el))
	nodes := []*gtree.Node{root}
	// gtree merges siblings with equal text, so repeated labels are numbered.
	seen := make(map[*gtree.Node]map[string]int)
	err := java.Walk(el, func(el java.Element, depth int) error {
		if depth > 0 {
			parent := nodes[depth-1]
			node := parent.Add(uniqueLabel(seen, parent, treeLabel(el)))
			nodes = append(nodes[:depth], node)
		}
		switch el.(type) {
		case *java.Method, *java.Constructor:
			// parameters are part of the label
			return java.SkipChildren
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := gtree.OutputFromRoot(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func uniqueLabel(seen map[*gtree.Node]map[string]int, parent *gtree.Node, label string) string {
	counts := seen[parent]
	if counts == nil {
		counts = make(map[string]int)
		seen[parent] = counts
	}
	counts[label]++
	if n := counts[label]; n > 1 {
		return fmt.Sprintf("%s (%d)", label, n)
	}
	return label
}

func treeLabel(el java.Element) string {
	var parts []string
	parts = append(parts, annotationNames(el.Annotations())...)
	if v := el.Visibility(); v != java.VisibilityNone && v != java.VisibilityPackage {
		parts = append(parts, v.String())
	}
	parts = append(parts, modifiers(el)...)

	name := el.Name()
	switch el := el.(type) {
	case *java.Type:
		parts = append(parts, el.Kind().String())
		name = el.QualifiedName()
	case *java.Method:
		if el.IsVoid() {
			parts = append(parts, "void")
		} else {
			parts = append(parts, el.ReturnType())
		}
		name += parameterList(el.Parameters())
	case *java.Constructor:
		name += parameterList(el.Parameters())
	default:
		if rt := el.ReturnType(); rt != "" {
			parts = append(parts, rt)
		}
		if v := el.InitializationValue(); v != "" {
			name += " = " + v
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, " ")
}
