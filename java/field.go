package java

// Field is a member variable. Constants are fields created with
// NewConstant.
type Field struct {
	element
	constant bool
}

// NewField creates a field of the given declared type. It defaults to
// private with the default inheritance modifier.
func NewField(name, typ string, opts ...Option) (*Field, error) {
	o := collect(opts)
	f := &Field{element: element{Attributes{
		Name:                name,
		Kind:                KindField,
		ReturnType:          typ,
		Visibility:          o.visibility.or(VisibilityPrivate),
		IsStatic:            o.isStatic,
		InheritModifier:     o.inheritModifier.or(InheritDefault),
		InitializationValue: o.initializer,
		Description:         o.description.or("Generated Java field."),
		Annotations:         o.annotations,
	}}}
	if err := validateElement(&f.attrs); err != nil {
		return nil, err
	}
	return f, nil
}

// NewConstant creates a static final field. The initialization value is
// required; WithStatic, WithInheritModifier and WithInitializer are
// ignored.
func NewConstant(name, typ, value string, visibility Visibility, opts ...Option) (*Field, error) {
	o := collect(opts)
	f := &Field{
		element: element{Attributes{
			Name:                name,
			Kind:                KindField,
			ReturnType:          typ,
			Visibility:          visibility,
			IsStatic:            true,
			InheritModifier:     InheritFinal,
			InitializationValue: value,
			Description:         o.description.or("Generated Java constant."),
			Annotations:         o.annotations,
		}},
		constant: true,
	}
	if err := validateElement(&f.attrs); err != nil {
		return nil, err
	}
	if value == "" {
		return nil, missingAttribute(&f.attrs, "InitializationValue")
	}
	return f, nil
}

func (f *Field) isMember() {}

// IsConstant reports whether f was created by NewConstant.
func (f *Field) IsConstant() bool { return f.constant }

func (f *Field) IsFinal() bool { return f.InheritModifier() == InheritFinal }
