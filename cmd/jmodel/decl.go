package main

import (
	"fmt"
	"strings"

	"github.com/lby1992/JavaCodeGenerator/java"
)

// decl is a flag value split into its parts:
//
//	[modifiers] name[:Type][(params)][=value]
type decl struct {
	visibility java.Visibility
	modifier   java.InheritModifier
	static     bool
	name       string
	typ        string
	params     []string
	value      string
	hasParams  bool
}

func parseDecl(s string) (decl, error) {
	var d decl
	s = strings.TrimSpace(s)

	head, value, hasValue := strings.Cut(s, "=")
	if hasValue {
		d.value = strings.TrimSpace(value)
	}

	if open := strings.IndexByte(head, '('); open >= 0 {
		closing := strings.LastIndexByte(head, ')')
		if closing < open {
			return d, fmt.Errorf("unbalanced parentheses")
		}
		if rest := strings.TrimSpace(head[closing+1:]); rest != "" {
			return d, fmt.Errorf("unexpected %q after parameters", rest)
		}
		d.hasParams = true
		d.params = splitTopLevel(head[open+1 : closing])
		head = head[:open]
	}

	words := strings.Fields(head)
	if len(words) == 0 {
		return d, fmt.Errorf("missing name")
	}
	for _, w := range words[:len(words)-1] {
		if err := d.applyModifier(w); err != nil {
			return d, err
		}
	}

	name, typ, _ := strings.Cut(words[len(words)-1], ":")
	d.name = name
	d.typ = typ
	return d, nil
}

func (d *decl) applyModifier(word string) error {
	switch word {
	case "public", "protected", "private", "package":
		d.visibility = java.Visibility(word)
	case "static":
		d.static = true
	case "final", "abstract":
		d.modifier = java.InheritModifier(word)
	default:
		return fmt.Errorf("unknown modifier %q", word)
	}
	return nil
}

func (d decl) options() []java.Option {
	var opts []java.Option
	if d.visibility != java.VisibilityNone {
		opts = append(opts, java.WithVisibility(d.visibility))
	}
	if d.modifier != java.InheritNone {
		opts = append(opts, java.WithInheritModifier(d.modifier))
	}
	if d.static {
		opts = append(opts, java.WithStatic())
	}
	return opts
}

func (d decl) parameters() ([]*java.Parameter, error) {
	var params []*java.Parameter
	for _, spec := range d.params {
		name, typ, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("parameter %q: expected name:Type", spec)
		}
		p, err := java.NewParameter(strings.TrimSpace(name), strings.TrimSpace(typ))
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func parseField(s string) (*java.Field, error) {
	d, err := parseDecl(s)
	if err != nil {
		return nil, err
	}
	if d.hasParams {
		return nil, fmt.Errorf("fields take no parameters")
	}
	opts := d.options()
	if d.value != "" {
		opts = append(opts, java.WithInitializer(d.value))
	}
	return java.NewField(d.name, d.typ, opts...)
}

// parseConstant reads a constant. Without a visibility modifier the
// constant is public.
func parseConstant(s string) (*java.Field, error) {
	d, err := parseDecl(s)
	if err != nil {
		return nil, err
	}
	if d.hasParams {
		return nil, fmt.Errorf("constants take no parameters")
	}
	visibility := d.visibility
	if visibility == java.VisibilityNone {
		visibility = java.VisibilityPublic
	}
	return java.NewConstant(d.name, d.typ, d.value, visibility)
}

// parseMethod reads a method. Without a visibility modifier the method is
// public.
func parseMethod(s string) (*java.Method, error) {
	d, err := parseDecl(s)
	if err != nil {
		return nil, err
	}
	if d.value != "" {
		return nil, fmt.Errorf("methods take no value")
	}
	params, err := d.parameters()
	if err != nil {
		return nil, err
	}
	visibility := d.visibility
	if visibility == java.VisibilityNone {
		visibility = java.VisibilityPublic
	}
	opts := d.options()
	if d.typ != "" {
		opts = append(opts, java.WithReturnType(d.typ))
	}
	opts = append(opts, java.WithParameters(params...))
	return java.NewMethod(d.name, visibility, opts...)
}

// parseConstructor reads '[visibility] (params)'; the name is always the
// owning type's.
func parseConstructor(typeName, s string) (*java.Constructor, error) {
	mods, rest, ok := strings.Cut(strings.TrimSpace(s), "(")
	if !ok {
		rest = ")"
	}
	d, err := parseDecl(mods + " " + typeName + "(" + rest)
	if err != nil {
		return nil, err
	}
	if d.static || d.modifier != java.InheritNone {
		return nil, fmt.Errorf("constructors take only a visibility")
	}
	params, err := d.parameters()
	if err != nil {
		return nil, err
	}
	opts := d.options()
	opts = append(opts, java.WithParameters(params...))
	return java.NewConstructor(typeName, opts...)
}

// splitTopLevel splits s at commas that are not nested in angle brackets,
// so Map<K,V> stays one entry.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(parts) > 0 {
		parts = append(parts, last)
	}
	return parts
}
