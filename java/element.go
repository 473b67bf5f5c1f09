package java

// Element is implemented by every modeled construct. It exposes the shared
// attribute schema read-only.
type Element interface {
	Name() string
	Kind() Kind
	ReturnType() string
	Visibility() Visibility
	IsStatic() bool
	InheritModifier() InheritModifier
	InitializationValue() string
	Description() string
	Annotations() []Annotation

	// Attributes returns a copy of the full attribute set.
	Attributes() Attributes

	isElement()
}

// Member is an element that a Type can own: constructors, fields
// (constants included), methods and nested types.
type Member interface {
	Element
	isMember()
}

type element struct {
	attrs Attributes
}

func (e *element) Name() string                     { return e.attrs.Name }
func (e *element) Kind() Kind                       { return e.attrs.Kind }
func (e *element) ReturnType() string               { return e.attrs.ReturnType }
func (e *element) Visibility() Visibility           { return e.attrs.Visibility }
func (e *element) IsStatic() bool                   { return e.attrs.IsStatic }
func (e *element) InheritModifier() InheritModifier { return e.attrs.InheritModifier }
func (e *element) InitializationValue() string      { return e.attrs.InitializationValue }
func (e *element) Description() string              { return e.attrs.Description }
func (e *element) Attributes() Attributes           { return e.attrs.clone() }
func (e *element) isElement()                       {}

func (e *element) Annotations() []Annotation {
	if e.attrs.Annotations == nil {
		return nil
	}
	return append([]Annotation(nil), e.attrs.Annotations...)
}

// Package names a namespace grouping for types.
type Package struct {
	element
}

// NewPackage creates a package. Only WithDescription and WithAnnotations
// apply.
func NewPackage(name string, opts ...Option) (*Package, error) {
	o := collect(opts)
	p := &Package{element{Attributes{
		Name:        name,
		Kind:        KindPackage,
		Description: o.description.or(""),
		Annotations: o.annotations,
	}}}
	if err := validateElement(&p.attrs); err != nil {
		return nil, err
	}
	return p, nil
}
