// pkg/core/interface.go
package core

// PackageManager describes a native package manager protoboot can delegate to
type PackageManager interface {
	// Name returns the executable name probed on PATH (e.g., "apt", "brew")
	Name() string

	// DisplayName is the name shown in status lines (e.g., "Homebrew")
	DisplayName() string

	// InstallCommand returns the full argv that installs pkg
	InstallCommand(pkg string) []string

	// MissingMessage is printed when the manager is not on PATH
	MissingMessage() string
}
