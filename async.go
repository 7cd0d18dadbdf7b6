// async.go
package orange

import (
	"context"
	"fmt"
)

// Result is the outcome of an operation run with Go
type Result struct {
	Command  CommandResult
	Packages []Package
	Err      error
}

// Go runs fn on its own goroutine and delivers exactly one Result on the
// returned channel, which is then closed. A panic in fn is reported as Err.
func Go(ctx context.Context, fn func(context.Context) Result) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				ch <- Result{Err: fmt.Errorf("operation panicked: %v", r)}
			}
		}()
		ch <- fn(ctx)
	}()
	return ch
}

func commandResult(res CommandResult, err error) Result {
	return Result{Command: res, Err: err}
}

func packagesResult(pkgs []Package, err error) Result {
	return Result{Packages: pkgs, Err: err}
}

// RefreshIndexAsync runs RefreshIndex in the background
func (m *Manager) RefreshIndexAsync(ctx context.Context) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return commandResult(m.RefreshIndex(ctx)) })
}

// UpgradeAsync runs Upgrade in the background
func (m *Manager) UpgradeAsync(ctx context.Context, target string) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return commandResult(m.Upgrade(ctx, target)) })
}

// InstallAsync runs Install in the background
func (m *Manager) InstallAsync(ctx context.Context, target string) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return commandResult(m.Install(ctx, target)) })
}

// RemoveAsync runs Remove in the background
func (m *Manager) RemoveAsync(ctx context.Context, target string) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return commandResult(m.Remove(ctx, target)) })
}

// SearchAsync runs Search in the background
func (m *Manager) SearchAsync(ctx context.Context, query string) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return packagesResult(m.Search(ctx, query)) })
}

// ListInstalledAsync runs ListInstalled in the background
func (m *Manager) ListInstalledAsync(ctx context.Context) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return packagesResult(m.ListInstalled(ctx)) })
}

// ListUpgradableAsync runs ListUpgradable in the background
func (m *Manager) ListUpgradableAsync(ctx context.Context) <-chan Result {
	return Go(ctx, func(ctx context.Context) Result { return packagesResult(m.ListUpgradable(ctx)) })
}
