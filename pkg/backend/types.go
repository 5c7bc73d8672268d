// pkg/backend/types.go
package backend

import (
	"fmt"
	"sort"

	"github.com/arc-language/protoboot/pkg/core"
	"github.com/arc-language/protoboot/pkg/platform"
)

// BackendType represents the package manager backend
type BackendType string

const (
	// BackendChoco uses the Chocolatey package manager
	BackendChoco BackendType = "choco"
	// BackendBrew uses the Homebrew package manager
	BackendBrew BackendType = "brew"
	// BackendApt uses the Debian/Ubuntu package manager
	BackendApt BackendType = "apt"
)

var backends = map[BackendType]core.PackageManager{
	BackendChoco: NewChocoBackend(),
	BackendBrew:  NewBrewBackend(),
	BackendApt:   NewAptBackend(),
}

var byOS = map[platform.OS]BackendType{
	platform.Windows: BackendChoco,
	platform.MacOS:   BackendBrew,
	platform.Linux:   BackendApt,
}

// ForOS returns the backend used on os. ok is false for unsupported systems.
func ForOS(os platform.OS) (core.PackageManager, bool) {
	t, ok := byOS[os]
	if !ok {
		return nil, false
	}
	return backends[t], true
}

// Get returns a backend by name
func Get(name string) (core.PackageManager, error) {
	b, ok := backends[BackendType(name)]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
	return b, nil
}

// Available lists the registered backend names
func Available() []string {
	names := make([]string, 0, len(backends))
	for t := range backends {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

func installArgs(manager, pkg string) []string {
	return []string{manager, "install", pkg}
}
