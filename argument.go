package rtfmt

// PositionalArguments is the indexed store consumed by [Parse].
// Implementations must support random access by index, which the
// parser also uses for forward cursor iteration.
type PositionalArguments interface {
	// Arg returns the value at index i.
	Arg(i int) (Value, bool)
	// Len returns the number of positional values.
	Len() int
}

// NamedArguments is the keyed store consumed by [Parse].
type NamedArguments interface {
	// Get returns the value registered under name.
	Get(name string) (Value, bool)
}

// Values is the slice implementation of [PositionalArguments]. A nil
// Values is the empty store.
type Values []Value

// Arg returns the value at index i.
func (v Values) Arg(i int) (Value, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return v[i], true
}

// Len returns the number of values.
func (v Values) Len() int { return len(v) }

// ValueMap is the map implementation of [NamedArguments]. A nil
// ValueMap is the empty store.
type ValueMap map[string]Value

// Get returns the value registered under name.
func (m ValueMap) Get(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

// ArgumentSource resolves placeholder references during a parse. Next
// is the only call that advances the positional cursor; ByIndex and
// ByName never touch it.
type ArgumentSource interface {
	Next() (Value, bool)
	ByIndex(i int) (Value, bool)
	ByName(name string) (Value, bool)
}

// Source is the standard [ArgumentSource] over a positional and a
// named store. It owns the cursor, so one Source serves exactly one
// parse. The zero value draws from empty stores.
type Source struct {
	positional PositionalArguments
	named      NamedArguments
	cursor     int
}

// NewSource returns a Source reading positional values in cursor order
// and named values by key. Nil stores are treated as empty.
func NewSource(positional PositionalArguments, named NamedArguments) *Source {
	return &Source{positional: positional, named: named}
}

// Next returns the value under the cursor and advances it.
func (s *Source) Next() (Value, bool) {
	if s.positional == nil || s.cursor >= s.positional.Len() {
		return nil, false
	}
	v, ok := s.positional.Arg(s.cursor)
	s.cursor++
	return v, ok
}

// ByIndex returns the positional value at i without moving the cursor.
func (s *Source) ByIndex(i int) (Value, bool) {
	if s.positional == nil {
		return nil, false
	}
	return s.positional.Arg(i)
}

// ByName returns the named value for name without moving the cursor.
func (s *Source) ByName(name string) (Value, bool) {
	if s.named == nil {
		return nil, false
	}
	return s.named.Get(name)
}
