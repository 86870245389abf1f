package theme

import "github.com/pkg/errors"

var (
	// ErrMissingKey is returned when a path cannot be resolved in a scope
	// or any of its parents.
	ErrMissingKey = errors.New("theme: missing key")

	// ErrWrongType is returned when a key resolves to a value of an
	// unexpected type.
	ErrWrongType = errors.New("theme: wrong type")
)

func missing(path []string) error {
	return errors.Wrapf(ErrMissingKey, "path %q", path)
}

func wrongType(path []string, want string, got any) error {
	return errors.Wrapf(ErrWrongType, "path %q: want %s, got %T", path, want, got)
}
