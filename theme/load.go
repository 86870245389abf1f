package theme

import (
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gui/internal/debug"
)

//go:embed default.json
var defaultJSON []byte

// Default returns a fresh copy of the built-in theme.
func Default() (*Scope, error) {
	return decode(defaultJSON, "default")
}

// MustDefault is like Default but panics on error.
func MustDefault() *Scope {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Load decodes a JSON theme from r.
func Load(r io.Reader) (*Scope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading theme")
	}
	return decode(data, "reader")
}

// LoadFile decodes the JSON theme stored at path.
func LoadFile(path string) (*Scope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading theme")
	}
	return decode(data, path)
}

// LoadFiles reads every path in parallel and deep merges them in order,
// later files overriding earlier ones, before building the theme.
func LoadFiles(ctx context.Context, paths ...string) (*Scope, error) {
	return loadMerged(ctx, map[string]any{}, paths)
}

// Extend is like LoadFiles but merges the files over the built-in theme,
// so they only need the keys they change.
func Extend(ctx context.Context, paths ...string) (*Scope, error) {
	base := map[string]any{}
	if err := json.Unmarshal(defaultJSON, &base); err != nil {
		return nil, errors.Wrap(err, "decoding theme default")
	}
	return loadMerged(ctx, base, paths)
}

func loadMerged(ctx context.Context, merged map[string]any, paths []string) (*Scope, error) {
	docs := make([]map[string]any, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading theme %s", path)
			}
			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err != nil {
				return errors.Wrapf(err, "decoding theme %s", path)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		merge(merged, doc)
	}
	debug.Log("theme.LoadFiles: merged %d files", len(paths))
	return New(merged)
}

func decode(data []byte, source string) (*Scope, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding theme %s", source)
	}
	s, err := New(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "building theme %s", source)
	}
	debug.Log("theme: loaded %s (%d root keys)", source, len(doc))
	return s, nil
}

// merge copies src into dst, recursing into objects present in both.
// Image specs are replaced whole.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, isMap := v.(map[string]any)
		existing, hasMap := dst[k].(map[string]any)
		if isMap && hasMap && !isImageKey(k) {
			merge(existing, sub)
			continue
		}
		dst[k] = v
	}
}

func isImageKey(k string) bool {
	return len(k) >= 5 && k[:5] == "image"
}

func sortedKeys(m map[string]any) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
