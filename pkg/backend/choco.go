// pkg/backend/choco.go
package backend

// ChocoBackend installs packages with Chocolatey on Windows
type ChocoBackend struct{}

// NewChocoBackend creates a new Chocolatey backend
func NewChocoBackend() *ChocoBackend {
	return &ChocoBackend{}
}

// Name returns the backend name
func (b *ChocoBackend) Name() string {
	return "choco"
}

// DisplayName returns the product name
func (b *ChocoBackend) DisplayName() string {
	return "Chocolatey"
}

// InstallCommand returns `choco install <pkg>`
func (b *ChocoBackend) InstallCommand(pkg string) []string {
	return installArgs(b.Name(), pkg)
}

// MissingMessage asks the user to install Chocolatey
func (b *ChocoBackend) MissingMessage() string {
	return "Chocolatey is not installed. Please install it first"
}
