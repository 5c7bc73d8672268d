// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/protoboot/pkg/backend"
	"github.com/arc-language/protoboot/pkg/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported package managers found on this system",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	plat := platform.Detect(pathResolver)
	logger.Debugw("detected platform", "platform", plat.String())

	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed)

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.GOOS, plat.Arch)
	fmt.Fprintf(out, "Package managers:\n")
	for _, name := range backend.Available() {
		marker := " "
		if name == plat.Preferred {
			marker = "*"
		}
		status := missing.Sprint("not found")
		for _, a := range plat.Available {
			if a == name {
				status = found.Sprint("found")
			}
		}
		fmt.Fprintf(out, "  %s %-6s %s\n", marker, name, status)
	}

	if plat.Preferred != "" {
		fmt.Fprintf(out, "\n* = used on this system\n")
	} else {
		fmt.Fprintf(out, "\nUnsupported operating system\n")
	}

	return nil
}
