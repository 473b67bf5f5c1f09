// Package java models the declarative elements of a Java source file:
// packages, types, fields, constants, constructors, methods, parameters
// and annotations.
//
// The model is a passive descriptor tree. A single goroutine builds it
// (factories plus AddMember and AddParameter); afterwards it is handed to
// readers and must not be mutated again. Nothing in the package enforces
// this hand-off, and no locking is done.
package java

type Kind string

const (
	KindPackage     Kind = "package"
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindEnum        Kind = "enum"
	KindAnnotation  Kind = "annotation"
	KindConstructor Kind = "constructor"
	KindField       Kind = "field"
	KindMethod      Kind = "method"
	KindParameter   Kind = "parameter"
)

func (k Kind) String() string { return string(k) }

func (k Kind) Valid() bool {
	switch k {
	case KindPackage, KindClass, KindInterface, KindEnum, KindAnnotation,
		KindConstructor, KindField, KindMethod, KindParameter:
		return true
	}
	return false
}

// IsType reports whether k names a type declaration.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindInterface, KindEnum, KindAnnotation:
		return true
	}
	return false
}

// Visibility is an access modifier. The zero value means the element has
// no visibility, as for packages and parameters.
type Visibility string

const (
	VisibilityNone      Visibility = ""
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
	VisibilityPrivate   Visibility = "private"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityNone, VisibilityPublic, VisibilityProtected, VisibilityPackage, VisibilityPrivate:
		return true
	}
	return false
}

// InheritModifier governs overridability. The zero value means the element
// has no modifier, as for constructors.
type InheritModifier string

const (
	InheritNone     InheritModifier = ""
	InheritDefault  InheritModifier = "default"
	InheritFinal    InheritModifier = "final"
	InheritAbstract InheritModifier = "abstract"
)

func (m InheritModifier) String() string { return string(m) }

func (m InheritModifier) Valid() bool {
	switch m {
	case InheritNone, InheritDefault, InheritFinal, InheritAbstract:
		return true
	}
	return false
}

// Attributes is the attribute schema shared by every element. Optional
// string attributes are absent when empty.
type Attributes struct {
	Name                string          `validate:"required"`
	Kind                Kind            `validate:"required,oneof=package class interface enum annotation constructor field method parameter"`
	ReturnType          string          `validate:"required_if=Kind field,required_if=Kind parameter"`
	Visibility          Visibility      `validate:"omitempty,oneof=public protected package private"`
	IsStatic            bool            `validate:"-"`
	InheritModifier     InheritModifier `validate:"omitempty,oneof=default final abstract"`
	InitializationValue string          `validate:"-"`
	Description         string          `validate:"-"`
	Annotations         []Annotation    `validate:"dive"`
}

func (a Attributes) clone() Attributes {
	if a.Annotations != nil {
		a.Annotations = append([]Annotation(nil), a.Annotations...)
	}
	return a
}
