package testutil

import (
	"sync"
)

// FakeRunner records external commands instead of executing them
type FakeRunner struct {
	mu sync.Mutex

	// Calls records each invocation as name followed by its args
	Calls [][]string

	// Outputs maps a command name to its canned stdout
	Outputs map[string]string

	// Errs maps a command name to an injected error
	Errs map[string]error
}

// NewFakeRunner creates a FakeRunner with empty canned responses
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs: make(map[string]string),
		Errs:    make(map[string]error),
	}
}

// Run implements system.Runner
func (r *FakeRunner) Run(name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := append([]string{name}, args...)
	r.Calls = append(r.Calls, call)

	if err, ok := r.Errs[name]; ok {
		return "", err
	}
	return r.Outputs[name], nil
}

// CallsTo returns the recorded invocations of a command
func (r *FakeRunner) CallsTo(name string) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var calls [][]string
	for _, call := range r.Calls {
		if call[0] == name {
			calls = append(calls, call)
		}
	}
	return calls
}

// FakeLauncherIndex records refresh requests
type FakeLauncherIndex struct {
	Refreshed []string
	Err       error
}

// Refresh implements system.LauncherIndex
func (f *FakeLauncherIndex) Refresh(desktopDir string) error {
	f.Refreshed = append(f.Refreshed, desktopDir)
	return f.Err
}

// FakePackageManager fakes package queries and installs
type FakePackageManager struct {
	Installed  map[string]bool
	Installs   []string
	QueryErr   error
	InstallErr error
}

// NewFakePackageManager creates a FakePackageManager with no packages
// installed
func NewFakePackageManager() *FakePackageManager {
	return &FakePackageManager{Installed: make(map[string]bool)}
}

// IsInstalled implements system.PackageManager
func (f *FakePackageManager) IsInstalled(name string) (bool, error) {
	if f.QueryErr != nil {
		return false, f.QueryErr
	}
	return f.Installed[name], nil
}

// Install implements system.PackageManager
func (f *FakePackageManager) Install(name string) error {
	if f.InstallErr != nil {
		return f.InstallErr
	}
	f.Installs = append(f.Installs, name)
	f.Installed[name] = true
	return nil
}
