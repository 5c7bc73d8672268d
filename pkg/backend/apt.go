// pkg/backend/apt.go
package backend

// AptBackend installs packages with apt on Debian-family Linux
type AptBackend struct{}

// NewAptBackend creates a new APT backend
func NewAptBackend() *AptBackend {
	return &AptBackend{}
}

// Name returns the backend name
func (b *AptBackend) Name() string {
	return "apt"
}

// DisplayName is the same as Name for apt
func (b *AptBackend) DisplayName() string {
	return "apt"
}

// InstallCommand returns `apt install <pkg>`
func (b *AptBackend) InstallCommand(pkg string) []string {
	return installArgs(b.Name(), pkg)
}

// MissingMessage explains that only apt is supported on Linux
func (b *AptBackend) MissingMessage() string {
	return "apt is not installed. Your system may use a different package manager than what is supported"
}
