package main

import (
	"fmt"
	"os"

	"github.com/lby1992/JavaCodeGenerator/format"
	"github.com/lby1992/JavaCodeGenerator/java"
	"github.com/spf13/cobra"
)

type typeFlags struct {
	pkg          string
	kind         string
	extends      string
	implements   []string
	annotate     []string
	constructors []string
	constants    []string
	fields       []string
	methods      []string
	format       string
}

func newTypeCmd() *cobra.Command {
	var flags typeFlags

	cmd := &cobra.Command{
		Use:   "type <name>",
		Short: "Build a type from flags and print its model",
		Example: `  jmodel type User --package com.example \
    --constant 'public MAX_NAME_LEN:int=64' \
    --field name:String \
    --method 'getName:String' --method 'setName(name:String)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := buildType(args[0], flags)
			if err != nil {
				return err
			}
			log.Infof("built %s %s with %d members", typ.Kind(), typ.QualifiedName(), len(typ.Members()))

			enc, err := format.NewEncoder(flags.format, os.Stdout)
			if err != nil {
				return err
			}
			if err := enc.Encode(typ); err != nil {
				return fmt.Errorf("encode %s: %w", flags.format, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.pkg, "package", "p", "", "package the type is declared in")
	cmd.Flags().StringVarP(&flags.kind, "kind", "k", "class", "type kind (class, interface, enum, annotation)")
	cmd.Flags().StringVar(&flags.extends, "extends", "", "extended class")
	cmd.Flags().StringArrayVar(&flags.implements, "implements", nil, "implemented interface (repeatable)")
	cmd.Flags().StringArrayVar(&flags.annotate, "annotate", nil, "annotation type to apply to the type (repeatable)")
	cmd.Flags().StringArrayVar(&flags.constructors, "constructor", nil, "constructor parameters, e.g. '(name:String)' (repeatable)")
	cmd.Flags().StringArrayVar(&flags.constants, "constant", nil, "constant as '[modifiers] NAME:Type=value' (repeatable)")
	cmd.Flags().StringArrayVar(&flags.fields, "field", nil, "field as '[modifiers] name:Type[=value]' (repeatable)")
	cmd.Flags().StringArrayVar(&flags.methods, "method", nil, "method as '[modifiers] name[:ReturnType][(p:Type,...)]' (repeatable)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "line", "output format (line, json, yaml, tree)")

	return cmd
}

func newAnnotationCmd() *cobra.Command {
	var pkg, description, outputFormat string

	cmd := &cobra.Command{
		Use:   "annotation <name>",
		Short: "Build an annotation type declaration and print its model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []java.Option{java.WithPackage(pkg)}
			if description != "" {
				opts = append(opts, java.WithDescription(description))
			}
			ann, err := java.NewAnnotationType(args[0], opts...)
			if err != nil {
				return err
			}
			log.Infof("built annotation %s", ann.QualifiedName())

			enc, err := format.NewEncoder(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			return enc.Encode(ann)
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "package the annotation is declared in")
	cmd.Flags().StringVarP(&description, "description", "d", "", "documentation text")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json, yaml, tree)")

	return cmd
}

// buildType assembles the type described by flags. Members are added in
// a fixed order: constructors, constants, fields, then methods, each in
// flag order.
func buildType(name string, flags typeFlags) (*java.Type, error) {
	annotations := newAnnotationSet(flags.pkg)

	opts := []java.Option{
		java.WithPackage(flags.pkg),
		java.WithExtends(flags.extends),
		java.WithImplements(flags.implements...),
	}
	anns, err := annotations.resolve(flags.annotate)
	if err != nil {
		return nil, err
	}
	opts = append(opts, java.WithAnnotations(anns...))

	var typ *java.Type
	if java.Kind(flags.kind) == java.KindAnnotation {
		typ, err = java.NewAnnotationType(name, opts...)
	} else {
		typ, err = java.NewType(name, append(opts, java.WithKind(java.Kind(flags.kind)))...)
	}
	if err != nil {
		return nil, err
	}

	for _, spec := range flags.constructors {
		ctor, err := parseConstructor(typ.Name(), spec)
		if err != nil {
			return nil, fmt.Errorf("--constructor %q: %w", spec, err)
		}
		log.Debugf("constructor %s", spec)
		typ.AddMember(ctor)
	}
	for _, spec := range flags.constants {
		c, err := parseConstant(spec)
		if err != nil {
			return nil, fmt.Errorf("--constant %q: %w", spec, err)
		}
		log.Debugf("constant %s", c.Name())
		typ.AddMember(c)
	}
	for _, spec := range flags.fields {
		f, err := parseField(spec)
		if err != nil {
			return nil, fmt.Errorf("--field %q: %w", spec, err)
		}
		log.Debugf("field %s", f.Name())
		typ.AddMember(f)
	}
	for _, spec := range flags.methods {
		m, err := parseMethod(spec)
		if err != nil {
			return nil, fmt.Errorf("--method %q: %w", spec, err)
		}
		log.Debugf("method %s", m.Signature())
		typ.AddMember(m)
	}
	return typ, nil
}

// annotationSet hands out one declaration per annotation name so that
// repeated uses share it.
type annotationSet struct {
	pkg   string
	decls map[string]*java.Type
}

func newAnnotationSet(pkg string) *annotationSet {
	return &annotationSet{pkg: pkg, decls: make(map[string]*java.Type)}
}

func (s *annotationSet) resolve(names []string) ([]java.Annotation, error) {
	var result []java.Annotation
	for _, name := range names {
		decl, ok := s.decls[name]
		if !ok {
			var err error
			decl, err = java.NewAnnotationType(name, java.WithPackage(s.pkg))
			if err != nil {
				return nil, fmt.Errorf("--annotate %q: %w", name, err)
			}
			s.decls[name] = decl
		}
		result = append(result, java.Annotate(decl))
	}
	return result, nil
}
