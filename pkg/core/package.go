// pkg/core/package.go
package core

import "strings"

// Package is a target resolved against one backend
type Package struct {
	Name     string   // canonical name, also the binary probed on PATH
	Backend  string   // backend that will install it
	Resolved string   // backend-specific package name
	Command  []string // argv that installs it
}

// CommandLine renders the install argv as a single line
func (p *Package) CommandLine() string {
	return strings.Join(p.Command, " ")
}
