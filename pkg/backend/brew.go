// pkg/backend/brew.go
package backend

// BrewBackend installs packages with Homebrew
type BrewBackend struct{}

// NewBrewBackend creates a new Homebrew backend
func NewBrewBackend() *BrewBackend {
	return &BrewBackend{}
}

// Name returns the backend name
func (b *BrewBackend) Name() string {
	return "brew"
}

// DisplayName returns the product name
func (b *BrewBackend) DisplayName() string {
	return "Homebrew"
}

// InstallCommand returns `brew install <pkg>`
func (b *BrewBackend) InstallCommand(pkg string) []string {
	return installArgs(b.Name(), pkg)
}

// MissingMessage asks the user to install Homebrew
func (b *BrewBackend) MissingMessage() string {
	return "Homebrew is not installed. Please install it first"
}
