package java

// Annotation is the use of an annotation type on an element. Type points
// at the shared declaration made with NewAnnotationType; an Annotation
// does not own it.
type Annotation struct {
	Type   *Type `validate:"required"`
	Values []ElementValuePair
}

type ElementValuePair struct {
	Name  string
	Value string
}

// Annotate returns a usage of def with the given element values.
func Annotate(def *Type, values ...ElementValuePair) Annotation {
	return Annotation{Type: def, Values: values}
}

// Name returns the simple name of the annotation type, or "" for a usage
// without a declaration.
func (a Annotation) Name() string {
	if a.Type == nil {
		return ""
	}
	return a.Type.Name()
}

// Value returns the value of the element called name.
func (a Annotation) Value(name string) (string, bool) {
	for _, p := range a.Values {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
