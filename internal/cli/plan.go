// internal/cli/plan.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/protoboot/pkg/platform"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what install would do without running anything",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	b := newBootstrapper(cmd)
	host := hostOS()

	fmt.Fprintf(out, "Operating system: %s\n", host)
	fmt.Fprintf(out, "Binary: %s (on PATH: %t)\n", config.Binary, platform.CommandExists(pathResolver, config.Binary))

	pm, pkg, ok := b.Plan()
	if !ok {
		fmt.Fprintln(out, "Package manager: none (unsupported operating system)")
		return nil
	}

	fmt.Fprintf(out, "Package manager: %s (on PATH: %t)\n", pm.DisplayName(), platform.CommandExists(pathResolver, pm.Name()))
	fmt.Fprintf(out, "Package: %s\n", pkg.Resolved)
	fmt.Fprintf(out, "Command: %s\n", pkg.CommandLine())
	return nil
}
