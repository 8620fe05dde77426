package app

import (
	"context"
	"fmt"
	"sync"

	"tasklight/internal/backend"
	"tasklight/internal/logger"
)

// BootstrapState tracks the startup sequence. The machine is linear and
// never retries; a process restart is the only recovery path.
type BootstrapState int

const (
	Starting BootstrapState = iota
	RemoteInitInProgress
	Ready
	Failed
)

func (s BootstrapState) String() string {
	switch s {
	case Starting:
		return "starting"
	case RemoteInitInProgress:
		return "remote_init_in_progress"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// BootstrapError is fatal to the launch attempt. It is the only error
// class that changes which root UI gets mounted.
type BootstrapError struct {
	Stage string
	Cause error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap failed during %s: %v", e.Stage, e.Cause)
}

func (e *BootstrapError) Unwrap() error {
	return e.Cause
}

// Bootstrap drives the ordered startup sequence: hold the splash, run the
// remote initializer, release the splash. Mounting the root UI is the
// caller's job, decided by the returned error.
type Bootstrap struct {
	initializer backend.Initializer
	splash      Splash
	logger      logger.Logger

	mu    sync.RWMutex
	state BootstrapState
}

// NewBootstrap wires the sequence to its collaborators.
func NewBootstrap(initializer backend.Initializer, splash Splash, log logger.Logger) *Bootstrap {
	return &Bootstrap{
		initializer: initializer,
		splash:      splash,
		logger:      log,
		state:       Starting,
	}
}

// State reports the current machine state.
func (b *Bootstrap) State() BootstrapState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Bootstrap) setState(state BootstrapState) {
	b.mu.Lock()
	b.state = state
	b.mu.Unlock()

	b.logger.Info("Bootstrap", "state changed", map[string]interface{}{
		"state": state.String(),
	})
}

// Run executes the sequence and blocks until it lands in Ready or
// Failed. The splash is preserved before any initializer work and
// released exactly once on either outcome. A panic in the initializer is
// converted into a failure rather than crashing the launch.
func (b *Bootstrap) Run(ctx context.Context) *BootstrapError {
	b.splash.Preserve()
	defer b.splash.Release()

	b.setState(RemoteInitInProgress)

	if err := b.initialize(ctx); err != nil {
		b.setState(Failed)
		bootErr := &BootstrapError{Stage: "remote initialization", Cause: err}
		b.logger.Error("Bootstrap", bootErr, map[string]interface{}{
			"state": Failed.String(),
		})
		return bootErr
	}

	b.setState(Ready)
	return nil
}

func (b *Bootstrap) initialize(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initializer panic: %v", r)
		}
	}()

	return b.initializer.Initialize(ctx)
}
