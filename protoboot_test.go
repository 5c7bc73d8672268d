package protoboot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arc-language/protoboot/pkg/platform"
	"github.com/arc-language/protoboot/pkg/registry"
)

type fakeResolver struct {
	present map[string]bool
	probed  []string
}

func newFakeResolver(names ...string) *fakeResolver {
	r := &fakeResolver{present: map[string]bool{}}
	for _, n := range names {
		r.present[n] = true
	}
	return r
}

func (r *fakeResolver) LookPath(name string) (string, error) {
	r.probed = append(r.probed, name)
	if r.present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", exec.ErrNotFound
}

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (e *fakeExecutor) Run(_ context.Context, name string, args ...string) error {
	e.calls = append(e.calls, append([]string{name}, args...))
	return e.err
}

type fakeWaiter struct {
	waits []time.Duration
}

func (w *fakeWaiter) wait(_ context.Context, d time.Duration) {
	w.waits = append(w.waits, d)
}

type harness struct {
	resolver *fakeResolver
	executor *fakeExecutor
	waiter   *fakeWaiter
	out      *bytes.Buffer
	b        *Bootstrapper
}

func newHarness(host platform.OS, onPath ...string) *harness {
	h := &harness{
		resolver: newFakeResolver(onPath...),
		executor: &fakeExecutor{},
		waiter:   &fakeWaiter{},
		out:      &bytes.Buffer{},
	}
	h.b = New(Options{
		OS:       host,
		Delay:    3 * time.Second,
		Resolver: h.resolver,
		Executor: h.executor,
		Wait:     h.waiter.wait,
		Out:      h.out,
	})
	return h
}

func TestEnsureInstallsPerOS(t *testing.T) {
	tests := []struct {
		name    string
		os      platform.OS
		manager string
		message string
		argv    []string
	}{
		{"windows", platform.Windows, "choco", "Installing protoc with Chocolatey...\n", []string{"choco", "install", "protoc"}},
		{"macos", platform.MacOS, "brew", "Installing protoc with Homebrew...\n", []string{"brew", "install", "protobuf"}},
		{"linux", platform.Linux, "apt", "Installing protoc with apt...\n", []string{"apt", "install", "protobuf-compiler"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.os, tt.manager)

			got := h.b.Ensure(context.Background())

			assert.Equal(t, InstallAttempted, got)
			assert.Equal(t, tt.message, h.out.String())
			assert.Equal(t, []string{"protoc", tt.manager}, h.resolver.probed)
			assert.Equal(t, [][]string{tt.argv}, h.executor.calls)
			assert.Equal(t, []time.Duration{3 * time.Second}, h.waiter.waits)
		})
	}
}

func TestEnsureAlreadyInstalledShortCircuits(t *testing.T) {
	for _, host := range []platform.OS{platform.Windows, platform.MacOS, platform.Linux, platform.Other} {
		t.Run(host.String(), func(t *testing.T) {
			h := newHarness(host, "protoc", "choco", "brew", "apt")

			got := h.b.Ensure(context.Background())

			assert.Equal(t, AlreadyInstalled, got)
			assert.Equal(t, "protoc is already installed\n", h.out.String())
			assert.Equal(t, []string{"protoc"}, h.resolver.probed)
			assert.Empty(t, h.executor.calls)
			assert.Empty(t, h.waiter.waits)
		})
	}
}

func TestEnsureUnsupportedNeverInstalls(t *testing.T) {
	h := newHarness(platform.Other, "choco", "brew", "apt")

	got := h.b.Ensure(context.Background())

	assert.Equal(t, Unsupported, got)
	assert.Equal(t, "Unsupported operating system\n", h.out.String())
	assert.Equal(t, []string{"protoc"}, h.resolver.probed)
	assert.Empty(t, h.executor.calls)
	assert.Empty(t, h.waiter.waits)
}

func TestEnsureManagerMissing(t *testing.T) {
	tests := []struct {
		os      platform.OS
		onPath  []string
		message string
	}{
		{platform.Windows, []string{"brew", "apt"}, "Chocolatey is not installed. Please install it first\n"},
		{platform.MacOS, nil, "Homebrew is not installed. Please install it first\n"},
		{platform.Linux, []string{"brew"}, "apt is not installed. Your system may use a different package manager than what is supported\n"},
	}

	for _, tt := range tests {
		t.Run(tt.os.String(), func(t *testing.T) {
			h := newHarness(tt.os, tt.onPath...)

			got := h.b.Ensure(context.Background())

			assert.Equal(t, ManagerMissing, got)
			assert.Equal(t, tt.message, h.out.String())
			assert.Empty(t, h.executor.calls)
			assert.Empty(t, h.waiter.waits)
		})
	}
}

func TestEnsureIgnoresInstallFailure(t *testing.T) {
	h := newHarness(platform.Linux, "apt")
	h.executor.err = errors.New("exit status 100")

	got := h.b.Ensure(context.Background())

	assert.Equal(t, InstallAttempted, got)
	assert.Equal(t, "Installing protoc with apt...\n", h.out.String())
	assert.Len(t, h.executor.calls, 1)
}

func TestPlan(t *testing.T) {
	h := newHarness(platform.MacOS)

	pm, pkg, ok := h.b.Plan()
	require.True(t, ok)
	assert.Equal(t, "brew", pm.Name())
	assert.Equal(t, "protoc", pkg.Name)
	assert.Equal(t, "protobuf", pkg.Resolved)
	assert.Equal(t, "brew install protobuf", pkg.CommandLine())
	assert.Empty(t, h.resolver.probed)

	_, _, ok = newHarness(platform.Other).b.Plan()
	assert.False(t, ok)
}

func TestPlanUnknownBinaryFallsBackToName(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	b := New(Options{OS: platform.Linux, Binary: "buf", Out: &bytes.Buffer{}, Logger: zap.New(obs).Sugar()})

	_, pkg, ok := b.Plan()
	require.True(t, ok)
	assert.Equal(t, []string{"apt", "install", "buf"}, pkg.Command)

	entries := logs.FilterMessage("using canonical name").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "resolve buf: registry: package 'buf' not found", entries[0].ContextMap()["error"])
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "already-installed", AlreadyInstalled.String())
	assert.Equal(t, "install-attempted", InstallAttempted.String())
	assert.Equal(t, "manager-missing", ManagerMissing.String())
	assert.Equal(t, "unsupported", Unsupported.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}

func TestErrorFormatting(t *testing.T) {
	inner := errors.New("exit status 1")

	e := &Error{Op: "install", Package: "protobuf", Err: inner}
	assert.Equal(t, "install protobuf: exit status 1", e.Error())
	assert.ErrorIs(t, e, inner)

	assert.Equal(t, "install: exit status 1", (&Error{Op: "install", Err: inner}).Error())
}

func TestEnsureWithPartialRegistryOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "protoc"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "protoc", "index.toml"), []byte("[backends]\nbrew = \"protobuf@3\"\n"), 0644))
	reg, err := registry.New(dir)
	require.NoError(t, err)

	h := newHarness(platform.Linux, "apt")
	h.b.registry = reg

	assert.Equal(t, InstallAttempted, h.b.Ensure(context.Background()))
	assert.Equal(t, [][]string{{"apt", "install", "protobuf-compiler"}}, h.executor.calls)
}
