// pkg/platform/utils.go
package platform

// CommandExists checks if a command is available through r
func CommandExists(r PathResolver, cmd string) bool {
	if r == nil {
		r = SystemResolver{}
	}
	_, err := r.LookPath(cmd)
	return err == nil
}

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
