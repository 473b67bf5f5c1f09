package java

import (
	"errors"
	"testing"
)

func newUserType(t *testing.T) *Type {
	t.Helper()
	typ, err := NewType("User", WithPackage("com.example"))
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}
	c, err := NewConstant("MAX_NAME_LEN", "int", "64", VisibilityPublic)
	if err != nil {
		t.Fatalf("NewConstant: %v", err)
	}
	f, err := NewField("name", "String", WithVisibility(VisibilityPrivate))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	m, err := NewMethod("getName", VisibilityPublic, WithReturnType("String"))
	if err != nil {
		t.Fatalf("NewMethod: %v", err)
	}
	typ.AddMember(c)
	typ.AddMember(f)
	typ.AddMember(m)
	return typ
}

func TestUserTypeScenario(t *testing.T) {
	typ := newUserType(t)

	members := typ.Members()
	if len(members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(members))
	}

	want := []string{"MAX_NAME_LEN", "name", "getName"}
	for i, name := range want {
		if members[i].Name() != name {
			t.Errorf("Members()[%d].Name() = %q, want %q", i, members[i].Name(), name)
		}
	}

	t.Run("constant", func(t *testing.T) {
		c, ok := members[0].(*Field)
		if !ok {
			t.Fatalf("Members()[0] is %T, want *Field", members[0])
		}
		if got := c.InheritModifier(); got != InheritFinal {
			t.Errorf("InheritModifier() = %q, want %q", got, InheritFinal)
		}
		if !c.IsStatic() {
			t.Error("Expected IsStatic() to be true")
		}
	})

	t.Run("method", func(t *testing.T) {
		m, ok := members[2].(*Method)
		if !ok {
			t.Fatalf("Members()[2] is %T, want *Method", members[2])
		}
		if len(m.Parameters()) != 0 {
			t.Errorf("Expected no parameters, got %d", len(m.Parameters()))
		}
		if got := m.ReturnType(); got != "String" {
			t.Errorf("ReturnType() = %q, want %q", got, "String")
		}
	})
}

func TestAddMemberPreservesOrder(t *testing.T) {
	typ := Must(NewType("Box"))
	a := Must(NewType("Box"))
	b := Must(NewType("Other"))

	typ.AddMember(Must(NewField("first", "int")))
	if got := len(typ.Members()); got != 1 {
		t.Fatalf("Expected 1 member after first AddMember, got %d", got)
	}
	typ.AddMember(Must(NewConstructor("Box")))
	typ.AddMember(Must(NewType("Inner", WithStatic())))
	typ.AddMember(Must(NewMethod("open", VisibilityPublic)))

	kinds := []Kind{KindField, KindConstructor, KindClass, KindMethod}
	members := typ.Members()
	if len(members) != len(kinds) {
		t.Fatalf("Expected %d members, got %d", len(kinds), len(members))
	}
	for i, k := range kinds {
		if members[i].Kind() != k {
			t.Errorf("Members()[%d].Kind() = %q, want %q", i, members[i].Kind(), k)
		}
	}

	if len(a.Members()) != 0 || len(b.Members()) != 0 {
		t.Error("Unrelated types gained members")
	}
}

func TestWithMembersThenAdd(t *testing.T) {
	first := Must(NewField("a", "int"))
	typ := Must(NewType("T", WithMembers(first)))
	typ.AddMember(Must(NewField("b", "int")))

	members := typ.Members()
	if len(members) != 2 || members[0] != Member(first) {
		t.Errorf("Members() = %v, want [a b]", members)
	}
}

func TestMemberFilters(t *testing.T) {
	typ := newUserType(t)
	typ.AddMember(Must(NewConstructor("User")))
	typ.AddMember(Must(NewType("Builder", WithStatic())))

	if got := len(typ.Fields()); got != 2 {
		t.Errorf("Fields() has %d entries, want 2", got)
	}
	if got := len(typ.Methods()); got != 1 {
		t.Errorf("Methods() has %d entries, want 1", got)
	}
	if got := len(typ.Constructors()); got != 1 {
		t.Errorf("Constructors() has %d entries, want 1", got)
	}
	nested := typ.NestedTypes()
	if len(nested) != 1 || nested[0].Name() != "Builder" {
		t.Errorf("NestedTypes() = %v", nested)
	}
	if m := typ.Member("getName"); m == nil || m.Kind() != KindMethod {
		t.Errorf("Member(%q) = %v", "getName", m)
	}
	if m := typ.Member("missing"); m != nil {
		t.Errorf("Member(%q) = %v, want nil", "missing", m)
	}
}

func TestWalk(t *testing.T) {
	typ := newUserType(t)
	setName := Must(NewMethod("setName", VisibilityPublic))
	setName.AddParameter(Must(NewParameter("name", "String")))
	typ.AddMember(setName)

	var visited []string
	var depths []int
	err := Walk(typ, func(e Element, depth int) error {
		visited = append(visited, e.Name())
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantNames := []string{"User", "MAX_NAME_LEN", "name", "getName", "setName", "name"}
	wantDepths := []int{0, 1, 1, 1, 1, 2}
	if len(visited) != len(wantNames) {
		t.Fatalf("visited %v, want %v", visited, wantNames)
	}
	for i := range wantNames {
		if visited[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Errorf("visit %d = %s@%d, want %s@%d", i, visited[i], depths[i], wantNames[i], wantDepths[i])
		}
	}
}

func TestWalkSkipChildren(t *testing.T) {
	typ := Must(NewType("Outer"))
	inner := Must(NewType("Inner"))
	inner.AddMember(Must(NewField("hidden", "int")))
	typ.AddMember(inner)
	typ.AddMember(Must(NewField("visible", "int")))

	var visited []string
	err := Walk(typ, func(e Element, depth int) error {
		visited = append(visited, e.Name())
		if e.Name() == "Inner" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{"Outer", "Inner", "visible"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestWalkStops(t *testing.T) {
	typ := newUserType(t)
	stop := errors.New("stop")

	count := 0
	err := Walk(typ, func(e Element, depth int) error {
		count++
		if e.Name() == "name" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Walk error = %v, want %v", err, stop)
	}
	if count != 3 {
		t.Errorf("Visited %d elements, want 3", count)
	}
}
