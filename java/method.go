package java

import "strings"

// Method is a method declaration. It owns its parameters in declaration
// order.
type Method struct {
	element
	params []*Parameter
}

// NewMethod creates a method. Visibility is required; the method returns
// void unless WithReturnType is given.
func NewMethod(name string, visibility Visibility, opts ...Option) (*Method, error) {
	o := collect(opts)
	m := &Method{
		element: element{Attributes{
			Name:            name,
			Kind:            KindMethod,
			ReturnType:      o.returnType,
			Visibility:      visibility,
			IsStatic:        o.isStatic,
			InheritModifier: o.inheritModifier.or(InheritDefault),
			Description:     o.description.or("Generated Java method."),
			Annotations:     o.annotations,
		}},
		params: o.params,
	}
	if err := validateElement(&m.attrs); err != nil {
		return nil, err
	}
	if visibility == VisibilityNone {
		return nil, missingAttribute(&m.attrs, "Visibility")
	}
	return m, nil
}

func (m *Method) isMember() {}

// AddParameter appends p to the parameters of m. Duplicate names are not
// checked.
func (m *Method) AddParameter(p *Parameter) {
	if m.params == nil {
		m.params = make([]*Parameter, 0, 1)
	}
	m.params = append(m.params, p)
}

// Parameters returns the parameters of m in the order they were added.
func (m *Method) Parameters() []*Parameter {
	return m.params[:len(m.params):len(m.params)]
}

// IsVoid reports whether m declares no return type.
func (m *Method) IsVoid() bool {
	return m.ReturnType() == "" || m.ReturnType() == "void"
}

func (m *Method) IsAbstract() bool { return m.InheritModifier() == InheritAbstract }
func (m *Method) IsFinal() bool    { return m.InheritModifier() == InheritFinal }

// Signature returns the name and parameter types, e.g. "put(String, int)".
func (m *Method) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name())
	sb.WriteByte('(')
	for i, p := range m.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.ReturnType())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Constructor is a constructor declaration. It is never static and has
// neither a return type nor an inheritance modifier.
type Constructor struct {
	element
	params []*Parameter
}

// NewConstructor creates a constructor. By convention name matches the
// owning type; this is not checked. WithStatic is ignored.
func NewConstructor(name string, opts ...Option) (*Constructor, error) {
	o := collect(opts)
	c := &Constructor{
		element: element{Attributes{
			Name:        name,
			Kind:        KindConstructor,
			Visibility:  o.visibility.or(VisibilityPublic),
			Description: o.description.or("Generated Java constructor."),
			Annotations: o.annotations,
		}},
		params: o.params,
	}
	if err := validateElement(&c.attrs); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Constructor) isMember() {}

// AddParameter appends p to the parameters of c.
func (c *Constructor) AddParameter(p *Parameter) {
	if c.params == nil {
		c.params = make([]*Parameter, 0, 1)
	}
	c.params = append(c.params, p)
}

func (c *Constructor) Parameters() []*Parameter {
	return c.params[:len(c.params):len(c.params)]
}

// Parameter is a formal parameter of a method or constructor. It has no
// visibility and is never static.
type Parameter struct {
	element
}

// NewParameter creates a parameter of the given declared type. Only
// WithDescription and WithAnnotations apply.
func NewParameter(name, typ string, opts ...Option) (*Parameter, error) {
	o := collect(opts)
	p := &Parameter{element{Attributes{
		Name:            name,
		Kind:            KindParameter,
		ReturnType:      typ,
		InheritModifier: InheritDefault,
		Description:     o.description.or(""),
		Annotations:     o.annotations,
	}}}
	if err := validateElement(&p.attrs); err != nil {
		return nil, err
	}
	return p, nil
}
