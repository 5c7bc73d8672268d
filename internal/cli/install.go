// internal/cli/install.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/protoboot"
	"github.com/arc-language/protoboot/pkg/platform"
	"github.com/arc-language/protoboot/pkg/registry"
	"github.com/arc-language/protoboot/pkg/runner"
)

var hostOS = platform.CurrentOS

// Collaborators handed to the bootstrapper; replaced in tests.
var (
	pathResolver platform.PathResolver = platform.SystemResolver{}
	executor     runner.Executor       = runner.NewCommandExecutor()
	waiter       runner.Waiter
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install protoc if it is missing (default action)",
	Long: `Install protoc using the native package manager.

Examples:
  protoboot
  protoboot install --delay=0s
  protoboot install --debug`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func newBootstrapper(cmd *cobra.Command) *protoboot.Bootstrapper {
	reg, err := registry.New(config.RegistryDir)
	if err != nil {
		logger.Debugw("falling back to built-in registry", "dir", config.RegistryDir, "error", err)
		reg = registry.Default()
	}

	return protoboot.New(protoboot.Options{
		Binary:   config.Binary,
		Delay:    config.Delay,
		OS:       hostOS(),
		Resolver: pathResolver,
		Executor: executor,
		Wait:     waiter,
		Registry: reg,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
	})
}

// runInstall never fails: every outcome, including a failed install, is
// reported as text and the process exits 0.
func runInstall(cmd *cobra.Command, args []string) error {
	outcome := newBootstrapper(cmd).Ensure(cmd.Context())
	logger.Debugw("done", "outcome", outcome.String())
	return nil
}
