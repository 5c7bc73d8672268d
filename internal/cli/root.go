// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/protoboot/pkg/core"
)

var (
	cfgFile string
	debug   bool
	delay   time.Duration
	binary  string
	config  *core.Config
	logger  *zap.SugaredLogger
)

// rootCmd represents the base command. Without a subcommand it runs install.
var rootCmd = &cobra.Command{
	Use:   "protoboot",
	Short: "Make sure protoc is installed",
	Long: `protoboot - Protocol Buffers compiler bootstrapper

Checks whether protoc is on PATH and, if not, installs it with the
platform's package manager (choco on Windows, brew on macOS, apt on Linux).`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runInstall,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); none is read unless set")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", core.DefaultDelay, "pause before running the install command")
	rootCmd.PersistentFlags().StringVar(&binary, "binary", core.DefaultBinary, "binary to check for and install")

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	flags := cmd.Flags()
	if flags.Changed("debug") {
		config.Debug = debug
	}
	if flags.Changed("delay") {
		config.Delay = delay
	}
	if flags.Changed("binary") {
		config.Binary = binary
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger = newLogger(config.Debug)
	logger.Debugw("configuration loaded", "file", cfgFile, "binary", config.Binary, "delay", config.Delay)
	return nil
}

func newLogger(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
