package space

// Field declares one named parameter of a Spec. Fields are always referred
// to by name; their position in the Spec only fixes enumeration order, never
// call-site meaning.
type Field struct {
	Name string
	Kind Kind
	// Default pins the field to a single value when no Domain is set.
	Default *Value
	// Domain enumerates the legal values. When both Default and Domain are
	// set the domain wins and the default is ignored.
	Domain Domain
}

// Fixed is a convenience constructor for a field pinned to one value.
func Fixed(name string, v Value) Field {
	return Field{Name: name, Kind: v.Kind(), Default: &v}
}

// Var is a convenience constructor for a field ranging over a domain.
func Var(name string, d Domain) Field {
	return Field{Name: name, Kind: d.Kind(), Domain: d}
}

// Spec is a named, ordered schema of fields. It is defined once and treated
// as immutable afterwards.
type Spec struct {
	name   string
	fields []Field
}

// NewSpec validates the field list and builds a Spec. Every field must be
// independently nameable (unique, non-empty names) and determined (a default
// or a domain); violations are SchemaErrors.
func NewSpec(name string, fields ...Field) (*Spec, error) {
	if name == "" {
		return nil, schemaErrf("spec name must not be empty")
	}
	if len(fields) == 0 {
		return nil, schemaErrf("spec %q declares no fields", name)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, schemaErrf("spec %q has a field with an empty name", name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, schemaErrf("spec %q declares field %q twice", name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Domain == nil && f.Default == nil {
			return nil, schemaErrf("spec %q field %q has neither a default nor a domain", name, f.Name)
		}
		if f.Domain != nil && f.Domain.Kind() != f.Kind {
			return nil, schemaErrf("spec %q field %q is %s but its domain holds %s", name, f.Name, f.Kind, f.Domain.Kind())
		}
		if f.Domain == nil && f.Default.Kind() != f.Kind {
			return nil, schemaErrf("spec %q field %q is %s but its default is %s", name, f.Name, f.Kind, f.Default.Kind())
		}
	}
	s := &Spec{name: name, fields: make([]Field, len(fields))}
	copy(s.fields, fields)
	return s, nil
}

// Name returns the schema name.
func (s *Spec) Name() string { return s.name }

// Fields returns the ordered field descriptors as a copy.
func (s *Spec) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Cardinality is the number of instances Enumerate will yield: the product
// of every domain's size, with fixed fields contributing a factor of one.
func (s *Spec) Cardinality() int {
	n := 1
	for _, f := range s.fields {
		if f.Domain != nil {
			n *= f.Domain.Len()
		}
	}
	return n
}
