package format

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lby1992/JavaCodeGenerator/java"
)

// YAMLEncoder writes the same document as JSONEncoder in YAML.
type YAMLEncoder struct {
	w      io.Writer
	indent int
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w, indent: 2}
}

func (e *YAMLEncoder) Encode(el java.Element) error {
	text, err := e.Marshal(el)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) Marshal(el java.Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.indent)
	if err := enc.Encode(buildElementData(el)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
