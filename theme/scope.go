package theme

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Scope is one level of a theme. Lookups that miss in a scope continue in
// its parent.
type Scope struct {
	parent *Scope
	values map[string]any
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, values: make(map[string]any)}
}

// Parent returns the enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Keys returns the keys declared directly in this scope, sorted.
func (s *Scope) Keys() []string {
	keys := maps.Keys(s.values)
	slices.Sort(keys)
	return keys
}

// lookup finds key in s or its ancestors.
func (s *Scope) lookup(key string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get resolves path one key at a time, each step falling back to enclosing
// scopes. An empty path returns s itself.
func (s *Scope) Get(path ...string) (any, error) {
	var cur any = s
	for i, key := range path {
		scope, ok := cur.(*Scope)
		if !ok {
			return nil, wrongType(path[:i], "scope", cur)
		}
		v, ok := scope.lookup(key)
		if !ok {
			return nil, missing(path[:i+1])
		}
		cur = v
	}
	return cur, nil
}

// Has reports whether path resolves.
func (s *Scope) Has(path ...string) bool {
	_, err := s.Get(path...)
	return err == nil
}

// Set stores value at path, creating intermediate scopes in s as needed.
// Maps become nested scopes and "image" keys are parsed into templates.
func (s *Scope) Set(value any, path ...string) error {
	if len(path) == 0 {
		return wrongType(path, "non-empty path", nil)
	}
	cur := s
	for _, key := range path[:len(path)-1] {
		next, ok := cur.values[key].(*Scope)
		if !ok {
			next = newScope(cur)
			cur.values[key] = next
		}
		cur = next
	}
	return cur.build(path[len(path)-1], value)
}

// Scope resolves path to a nested scope.
func (s *Scope) Scope(path ...string) (*Scope, error) {
	v, err := s.Get(path...)
	if err != nil {
		return nil, err
	}
	scope, ok := v.(*Scope)
	if !ok {
		return nil, wrongType(path, "scope", v)
	}
	return scope, nil
}

// String resolves path to a string.
func (s *Scope) String(path ...string) (string, error) {
	v, err := s.Get(path...)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", wrongType(path, "string", v)
	}
	return str, nil
}

// Int resolves path to an integer. JSON numbers are truncated.
func (s *Scope) Int(path ...string) (int, error) {
	v, err := s.Get(path...)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, wrongType(path, "number", v)
	}
	return n, nil
}

// Ints resolves path to a list of integers.
func (s *Scope) Ints(path ...string) ([]int, error) {
	v, err := s.Get(path...)
	if err != nil {
		return nil, err
	}
	ns, ok := toInts(v)
	if !ok {
		return nil, wrongType(path, "list of numbers", v)
	}
	return ns, nil
}

// Template resolves path to an image template.
func (s *Scope) Template(path ...string) (Template, error) {
	v, err := s.Get(path...)
	if err != nil {
		return nil, err
	}
	t, ok := v.(Template)
	if !ok {
		return nil, wrongType(path, "template", v)
	}
	return t, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toInts(v any) ([]int, bool) {
	switch l := v.(type) {
	case []int:
		return slices.Clone(l), true
	case []any:
		out := make([]int, len(l))
		for i, e := range l {
			n, ok := toInt(e)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}
	return nil, false
}
