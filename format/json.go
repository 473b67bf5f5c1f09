package format

import (
	"encoding/json"
	"io"

	"github.com/lby1992/JavaCodeGenerator/java"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(el java.Element) error {
	text, err := e.Marshal(el)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) Marshal(el java.Element) ([]byte, error) {
	return json.MarshalIndent(buildElementData(el), "", "  ")
}

type elementData struct {
	Name            string           `json:"name" yaml:"name"`
	Kind            string           `json:"kind" yaml:"kind"`
	Package         string           `json:"package,omitempty" yaml:"package,omitempty"`
	Type            string           `json:"type,omitempty" yaml:"type,omitempty"`
	Visibility      string           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	InheritModifier string           `json:"inheritModifier,omitempty" yaml:"inheritModifier,omitempty"`
	Static          bool             `json:"static,omitempty" yaml:"static,omitempty"`
	Constant        bool             `json:"constant,omitempty" yaml:"constant,omitempty"`
	Value           string           `json:"value,omitempty" yaml:"value,omitempty"`
	Description     string           `json:"description,omitempty" yaml:"description,omitempty"`
	Annotations     []annotationData `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Extends         string           `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements      []string         `json:"implements,omitempty" yaml:"implements,omitempty"`
	Members         []elementData    `json:"members,omitempty" yaml:"members,omitempty"`
	Parameters      []elementData    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type annotationData struct {
	Type   string      `json:"type" yaml:"type"`
	Values []valueData `json:"values,omitempty" yaml:"values,omitempty"`
}

type valueData struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func buildElementData(el java.Element) elementData {
	a := el.Attributes()
	data := elementData{
		Name:            a.Name,
		Kind:            a.Kind.String(),
		Type:            a.ReturnType,
		Visibility:      a.Visibility.String(),
		InheritModifier: a.InheritModifier.String(),
		Static:          a.IsStatic,
		Value:           a.InitializationValue,
		Description:     a.Description,
		Annotations:     buildAnnotations(a.Annotations),
	}
	switch el := el.(type) {
	case *java.Type:
		data.Package = el.PackageName()
		data.Extends = el.ExtendedClass()
		data.Implements = el.ImplementedInterfaces()
		for _, m := range el.Members() {
			data.Members = append(data.Members, buildElementData(m))
		}
	case *java.Field:
		data.Constant = el.IsConstant()
	}
	for _, p := range parametersOf(el) {
		data.Parameters = append(data.Parameters, buildElementData(p))
	}
	return data
}

func buildAnnotations(anns []java.Annotation) []annotationData {
	var result []annotationData
	for _, a := range anns {
		ad := annotationData{Type: a.Name()}
		if a.Type != nil {
			ad.Type = a.Type.QualifiedName()
		}
		for _, v := range a.Values {
			ad.Values = append(ad.Values, valueData{Name: v.Name, Value: v.Value})
		}
		result = append(result, ad)
	}
	return result
}
