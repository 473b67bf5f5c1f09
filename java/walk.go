package java

import "errors"

// SkipChildren can be returned by a WalkFunc to skip the members or
// parameters of the element being visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each element visited by Walk. depth is 0 for the
// root.
type WalkFunc func(e Element, depth int) error

// Walk visits e and then, depth first and in insertion order, the members
// of a type and the parameters of a method or constructor.
func Walk(e Element, fn WalkFunc) error {
	err := walk(e, 0, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(e Element, depth int, fn WalkFunc) error {
	if err := fn(e, depth); err != nil {
		return err
	}
	for _, child := range Children(e) {
		if err := walk(child, depth+1, fn); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}
	return nil
}

// Children returns the elements owned by e: members for a type, parameters
// for a method or constructor, nothing otherwise.
func Children(e Element) []Element {
	switch e := e.(type) {
	case *Type:
		result := make([]Element, len(e.members))
		for i, m := range e.members {
			result[i] = m
		}
		return result
	case *Method:
		return parametersAsElements(e.params)
	case *Constructor:
		return parametersAsElements(e.params)
	}
	return nil
}

func parametersAsElements(params []*Parameter) []Element {
	result := make([]Element, len(params))
	for i, p := range params {
		result[i] = p
	}
	return result
}
