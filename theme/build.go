package theme

import (
	"strings"

	"github.com/pkg/errors"
)

// New builds a root scope from decoded JSON. Nested objects become scopes
// whose lookups fall back to their parents; keys starting with "image" are
// parsed into templates.
func New(data map[string]any) (*Scope, error) {
	root := newScope(nil)
	for _, key := range sortedKeys(data) {
		if err := root.build(key, data[key]); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// build stores value under key in s.
func (s *Scope) build(key string, value any) error {
	if strings.HasPrefix(key, "image") {
		im, err := parseImage(s.qualify(key), value)
		if err != nil {
			return err
		}
		s.values[key] = im
		return nil
	}

	m, ok := value.(map[string]any)
	if !ok {
		s.values[key] = value
		return nil
	}

	child, ok := s.values[key].(*Scope)
	if !ok {
		child = newScope(s)
		s.values[key] = child
	}
	for _, k := range sortedKeys(m) {
		if err := child.build(k, m[k]); err != nil {
			return errors.Wrapf(err, "building %s", key)
		}
	}
	return nil
}

// qualify returns a slash separated name for key inside s, used to label
// templates.
func (s *Scope) qualify(key string) string {
	var parts []string
	for cur := s; cur.parent != nil; cur = cur.parent {
		for k, v := range cur.parent.values {
			if v == cur {
				parts = append(parts, k)
				break
			}
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(append(parts, key), "/")
}
