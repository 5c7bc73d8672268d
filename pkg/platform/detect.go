// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// OS identifies the host operating system family
type OS int

const (
	Other OS = iota
	Windows
	MacOS
	Linux
)

// Parse maps a GOOS value to an OS. Matching is exact and case-sensitive.
func Parse(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

// CurrentOS returns the OS the process is running on
func CurrentOS() OS {
	return Parse(runtime.GOOS)
}

// String returns a human-readable name for the OS
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case MacOS:
		return "darwin"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Supported reports whether the OS has a known package manager
func (o OS) Supported() bool {
	return o != Other
}

// preferredManager is the package manager protoboot uses on each OS
var preferredManager = map[OS]string{
	Windows: "choco",
	MacOS:   "brew",
	Linux:   "apt",
}

// knownManagers is the probe order used by Detect
var knownManagers = []string{"choco", "brew", "apt"}

// Platform represents the detected system platform
type Platform struct {
	OS        OS
	GOOS      string   // raw runtime value, kept for display
	Arch      string   // amd64, arm64, 386, arm
	Available []string // supported package managers found on PATH
	Preferred string   // manager protoboot would use on this OS
}

// Detect inspects the current platform and the package managers on PATH
func Detect(r PathResolver) *Platform {
	return detect(runtime.GOOS, runtime.GOARCH, r)
}

func detect(goos, goarch string, r PathResolver) *Platform {
	p := &Platform{
		OS:        Parse(goos),
		GOOS:      goos,
		Arch:      goarch,
		Available: []string{},
		Preferred: preferredManager[Parse(goos)],
	}

	for _, pm := range knownManagers {
		if CommandExists(r, pm) {
			p.Available = append(p.Available, pm)
		}
	}

	return p
}

// PreferredAvailable reports whether the preferred manager was found on PATH
func (p *Platform) PreferredAvailable() bool {
	return p.Preferred != "" && contains(p.Available, p.Preferred)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.GOOS, p.Arch, p.Available, p.Preferred)
}
