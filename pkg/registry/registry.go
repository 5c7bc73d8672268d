// pkg/registry/registry.go
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

//go:embed deps
var embedded embed.FS

// Entry represents a single deps/<name>/index.toml file
type Entry struct {
	Name     string            `toml:"name"`
	Backends map[string]string `toml:"backends"`
}

// Registry looks up package entries in one or more deps trees.
// Earlier layers shadow later ones.
type Registry struct {
	layers []fs.FS
}

// Default returns a Registry backed only by the entries compiled into the binary
func Default() *Registry {
	deps, err := fs.Sub(embedded, "deps")
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	return &Registry{layers: []fs.FS{deps}}
}

// New creates a Registry that consults dir before the embedded entries.
// An empty dir yields Default().
func New(dir string) (*Registry, error) {
	r := Default()
	if dir == "" {
		return r, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry: %s is not a directory", dir)
	}

	r.layers = append([]fs.FS{os.DirFS(dir)}, r.layers...)
	return r, nil
}

// Resolve takes a canonical package name and a backend,
// returns the backend-specific package name.
// e.g. Resolve("protoc", "apt") -> "protobuf-compiler"
// Layers without a name for backend are skipped, so an override entry only
// replaces the backends it lists.
func (r *Registry) Resolve(name string, backend string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	found := false
	for _, layer := range r.layers {
		entry, err := loadFrom(layer, name)
		if err != nil {
			return "", err
		}
		if entry == nil {
			continue
		}
		found = true

		if pkgName := entry.Backends[backend]; pkgName != "" {
			return pkgName, nil
		}
	}

	if !found {
		return "", fmt.Errorf("registry: package '%s' not found", name)
	}
	return "", fmt.Errorf("registry: package '%s' has no entry for backend '%s'", name, backend)
}

// Load reads and parses <name>/index.toml from the first layer that has it
func (r *Registry) Load(name string) (*Entry, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	for _, layer := range r.layers {
		entry, err := loadFrom(layer, name)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return entry, nil
		}
	}

	return nil, fmt.Errorf("registry: package '%s' not found", name)
}

func validName(name string) error {
	if name == "" || !fs.ValidPath(name) || path.Base(name) != name {
		return fmt.Errorf("registry: invalid package name '%s'", name)
	}
	return nil
}

// loadFrom returns nil, nil when layer has no entry for name
func loadFrom(layer fs.FS, name string) (*Entry, error) {
	data, err := fs.ReadFile(layer, path.Join(name, "index.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		if _, statErr := fs.Stat(layer, name); statErr == nil {
			return nil, fmt.Errorf("registry: found package '%s' directory, but missing index.toml", name)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}
	return &entry, nil
}
