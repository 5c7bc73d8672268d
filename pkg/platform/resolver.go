// pkg/platform/resolver.go
package platform

import "os/exec"

// PathResolver looks up executables on the execution search path
type PathResolver interface {
	LookPath(name string) (string, error)
}

// SystemResolver resolves names against the real PATH
type SystemResolver struct{}

// LookPath wraps exec.LookPath
func (SystemResolver) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ResolverFunc adapts a plain function to PathResolver
type ResolverFunc func(name string) (string, error)

// LookPath calls f(name)
func (f ResolverFunc) LookPath(name string) (string, error) {
	return f(name)
}
