// protoboot.go
package protoboot

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/arc-language/protoboot/pkg/backend"
	"github.com/arc-language/protoboot/pkg/core"
	"github.com/arc-language/protoboot/pkg/platform"
	"github.com/arc-language/protoboot/pkg/registry"
	"github.com/arc-language/protoboot/pkg/runner"
)

// Outcome records which branch Ensure took
type Outcome int

const (
	// AlreadyInstalled means the binary was found on PATH
	AlreadyInstalled Outcome = iota
	// InstallAttempted means the install command was spawned; its result is not checked
	InstallAttempted
	// ManagerMissing means the OS package manager is not on PATH
	ManagerMissing
	// Unsupported means the OS has no known package manager
	Unsupported
)

func (o Outcome) String() string {
	switch o {
	case AlreadyInstalled:
		return "already-installed"
	case InstallAttempted:
		return "install-attempted"
	case ManagerMissing:
		return "manager-missing"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Options configures a Bootstrapper. Zero fields get production defaults.
type Options struct {
	Binary   string        // canonical package and binary name, default "protoc"
	Delay    time.Duration // pause before installing
	OS       platform.OS   // detected once by the caller
	Resolver platform.PathResolver
	Executor runner.Executor
	Wait     runner.Waiter
	Registry *registry.Registry
	Out      io.Writer
	Logger   *zap.SugaredLogger
}

// Bootstrapper makes sure a binary is installed using the native package manager
type Bootstrapper struct {
	binary   string
	delay    time.Duration
	os       platform.OS
	resolver platform.PathResolver
	executor runner.Executor
	wait     runner.Waiter
	registry *registry.Registry
	out      io.Writer
	log      *zap.SugaredLogger
}

// New creates a Bootstrapper from opts
func New(opts Options) *Bootstrapper {
	b := &Bootstrapper{
		binary:   opts.Binary,
		delay:    opts.Delay,
		os:       opts.OS,
		resolver: opts.Resolver,
		executor: opts.Executor,
		wait:     opts.Wait,
		registry: opts.Registry,
		out:      opts.Out,
		log:      opts.Logger,
	}

	if b.binary == "" {
		b.binary = core.DefaultBinary
	}
	if b.resolver == nil {
		b.resolver = platform.SystemResolver{}
	}
	if b.executor == nil {
		b.executor = runner.NewCommandExecutor()
	}
	if b.out == nil {
		b.out = os.Stdout
	}
	if b.wait == nil {
		b.wait = runner.SpinnerWait(b.out)
	}
	if b.registry == nil {
		b.registry = registry.Default()
	}
	if b.log == nil {
		b.log = zap.NewNop().Sugar()
	}

	return b
}

// Plan resolves what Ensure would run on this OS without probing PATH.
// ok is false when the OS is unsupported.
func (b *Bootstrapper) Plan() (pm core.PackageManager, pkg *core.Package, ok bool) {
	pm, ok = backend.ForOS(b.os)
	if !ok {
		return nil, nil, false
	}

	resolved, err := b.registry.Resolve(b.binary, pm.Name())
	if err != nil {
		b.log.Debugw("using canonical name", "backend", pm.Name(), "error", &Error{Op: "resolve", Package: b.binary, Err: err})
		resolved = b.binary
	}

	return pm, &core.Package{
		Name:     b.binary,
		Backend:  pm.Name(),
		Resolved: resolved,
		Command:  pm.InstallCommand(resolved),
	}, true
}

// Ensure installs the binary if it is missing. Every branch is reported
// on the output writer only; the install result is not inspected.
func (b *Bootstrapper) Ensure(ctx context.Context) Outcome {
	b.log.Debugw("checking binary", "binary", b.binary, "os", b.os.String())

	if path, err := b.resolver.LookPath(b.binary); err == nil {
		b.log.Debugw("binary found", "path", path)
		fmt.Fprintf(b.out, "%s is already installed\n", b.binary)
		return AlreadyInstalled
	}

	pm, pkg, ok := b.Plan()
	if !ok {
		fmt.Fprintln(b.out, "Unsupported operating system")
		return Unsupported
	}

	if !platform.CommandExists(b.resolver, pm.Name()) {
		fmt.Fprintln(b.out, pm.MissingMessage())
		return ManagerMissing
	}

	fmt.Fprintf(b.out, "Installing %s with %s...\n", b.binary, pm.DisplayName())
	b.wait(ctx, b.delay)

	b.log.Debugw("spawning install command", "argv", pkg.Command)
	if err := b.executor.Run(ctx, pkg.Command[0], pkg.Command[1:]...); err != nil {
		b.log.Debugw("install command finished with error", "error", &Error{Op: "install", Package: pkg.Resolved, Err: err})
	}

	return InstallAttempted
}
