// Package assets maps asset and shader names to files next to the program.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver resolves paths under a root directory: assets live in
// <root>/res and shaders in <root>/shaders.
type Resolver struct {
	root string
}

func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

// FromExecutable roots a Resolver at the directory holding the running
// binary, following symlinks.
func FromExecutable() (*Resolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return NewResolver(filepath.Dir(exe)), nil
}

func (r *Resolver) Root() string {
	return r.root
}

// AssetPath returns <root>/res/<rel>.
func (r *Resolver) AssetPath(rel string) string {
	return filepath.Join(r.root, "res", rel)
}

// ShaderPath returns <root>/shaders/<rel>.
func (r *Resolver) ShaderPath(rel string) string {
	return filepath.Join(r.root, "shaders", rel)
}

// OpenAsset opens the asset rel for reading.
func (r *Resolver) OpenAsset(rel string) (*os.File, error) {
	f, err := os.Open(r.AssetPath(rel))
	if err != nil {
		return nil, fmt.Errorf("open asset %q: %w", rel, err)
	}
	return f, nil
}
