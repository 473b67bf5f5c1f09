package java

import "strings"

// Type is a class, interface, enum or annotation type declaration. It owns
// its members in declaration order.
type Type struct {
	element
	packageName string
	extends     string
	implements  []string
	members     []Member
}

// NewType creates a type declaration. It defaults to a public class with
// the default inheritance modifier.
func NewType(name string, opts ...Option) (*Type, error) {
	o := collect(opts)
	return newType(name, o.kind.or(KindClass), o, "")
}

// NewAnnotationType creates the declaration of an annotation type. Its kind
// is always KindAnnotation; WithKind is ignored.
func NewAnnotationType(name string, opts ...Option) (*Type, error) {
	o := collect(opts)
	return newType(name, KindAnnotation, o, "Generated Java annotation.")
}

func newType(name string, kind Kind, o *options, description string) (*Type, error) {
	t := &Type{
		element: element{Attributes{
			Name:            name,
			Kind:            kind,
			Visibility:      o.visibility.or(VisibilityPublic),
			IsStatic:        o.isStatic,
			InheritModifier: o.inheritModifier.or(InheritDefault),
			Description:     o.description.or(description),
			Annotations:     o.annotations,
		}},
		packageName: o.packageName,
		extends:     o.extends,
		implements:  o.implements,
		members:     o.members,
	}
	if !kind.IsType() {
		return nil, invalidKind(&t.attrs)
	}
	if err := validateElement(&t.attrs); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Type) isMember() {}

// AddMember appends m to the members of t.
func (t *Type) AddMember(m Member) {
	if t.members == nil {
		t.members = make([]Member, 0, 1)
	}
	t.members = append(t.members, m)
}

// Members returns the members of t in the order they were added.
func (t *Type) Members() []Member {
	return t.members[:len(t.members):len(t.members)]
}

func (t *Type) PackageName() string { return t.packageName }

// QualifiedName returns the package-qualified name of t.
func (t *Type) QualifiedName() string {
	if t.packageName == "" {
		return t.Name()
	}
	return t.packageName + "." + t.Name()
}

// SimpleName returns the part of the name after the last dot.
func (t *Type) SimpleName() string {
	name := t.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (t *Type) ExtendedClass() string { return t.extends }

func (t *Type) ImplementedInterfaces() []string {
	if t.implements == nil {
		return nil
	}
	return append([]string(nil), t.implements...)
}

func (t *Type) IsClass() bool      { return t.Kind() == KindClass }
func (t *Type) IsInterface() bool  { return t.Kind() == KindInterface }
func (t *Type) IsEnum() bool       { return t.Kind() == KindEnum }
func (t *Type) IsAnnotation() bool { return t.Kind() == KindAnnotation }

func (t *Type) Constructors() []*Constructor {
	var result []*Constructor
	for _, m := range t.members {
		if c, ok := m.(*Constructor); ok {
			result = append(result, c)
		}
	}
	return result
}

// Fields returns the field members of t, constants included.
func (t *Type) Fields() []*Field {
	var result []*Field
	for _, m := range t.members {
		if f, ok := m.(*Field); ok {
			result = append(result, f)
		}
	}
	return result
}

func (t *Type) Methods() []*Method {
	var result []*Method
	for _, m := range t.members {
		if method, ok := m.(*Method); ok {
			result = append(result, method)
		}
	}
	return result
}

func (t *Type) NestedTypes() []*Type {
	var result []*Type
	for _, m := range t.members {
		if nested, ok := m.(*Type); ok {
			result = append(result, nested)
		}
	}
	return result
}

// Member returns the first member named name, or nil.
func (t *Type) Member(name string) Member {
	for _, m := range t.members {
		if m.Name() == name {
			return m
		}
	}
	return nil
}
