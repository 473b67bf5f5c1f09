package java

type optional[T any] struct {
	value T
	set   bool
}

func (o optional[T]) or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

type options struct {
	packageName     string
	kind            optional[Kind]
	visibility      optional[Visibility]
	inheritModifier optional[InheritModifier]
	isStatic        bool
	description     optional[string]
	returnType      string
	initializer     string
	annotations     []Annotation
	extends         string
	implements      []string
	members         []Member
	params          []*Parameter
}

// Option configures an element at construction. Options that do not apply
// to the element being built are ignored, and none can change an
// attribute the element fixes (a constant is always static and final).
type Option func(*options)

func collect(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPackage sets the package a type is declared in.
func WithPackage(name string) Option {
	return func(o *options) { o.packageName = name }
}

// WithKind selects class, interface or enum for NewType.
func WithKind(k Kind) Option {
	return func(o *options) { o.kind = optional[Kind]{k, true} }
}

func WithVisibility(v Visibility) Option {
	return func(o *options) { o.visibility = optional[Visibility]{v, true} }
}

func WithInheritModifier(m InheritModifier) Option {
	return func(o *options) { o.inheritModifier = optional[InheritModifier]{m, true} }
}

func WithStatic() Option {
	return func(o *options) { o.isStatic = true }
}

// WithDescription sets the text a generator turns into a doc comment. An
// empty description clears the element's default.
func WithDescription(text string) Option {
	return func(o *options) { o.description = optional[string]{text, true} }
}

// WithReturnType sets the return type of a method. Methods without one
// return void.
func WithReturnType(typ string) Option {
	return func(o *options) { o.returnType = typ }
}

// WithInitializer sets the initialization expression of a field.
func WithInitializer(expr string) Option {
	return func(o *options) { o.initializer = expr }
}

// WithAnnotations appends annotation usages.
func WithAnnotations(anns ...Annotation) Option {
	return func(o *options) { o.annotations = append(o.annotations, anns...) }
}

func WithExtends(class string) Option {
	return func(o *options) { o.extends = class }
}

func WithImplements(interfaces ...string) Option {
	return func(o *options) { o.implements = append(o.implements, interfaces...) }
}

// WithMembers seeds the member list of a type.
func WithMembers(members ...Member) Option {
	return func(o *options) { o.members = append(o.members, members...) }
}

// WithParameters seeds the parameter list of a method.
func WithParameters(params ...*Parameter) Option {
	return func(o *options) { o.params = append(o.params, params...) }
}
