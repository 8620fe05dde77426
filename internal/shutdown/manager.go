package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"tasklight/internal/logger"
)

const componentTimeout = 10 * time.Second

// Shutdownable is anything the manager tears down on exit.
type Shutdownable interface {
	Shutdown()
}

// Manager coordinates teardown on OS signals or an explicit Shutdown
// call, whichever comes first. Components shut down in reverse
// registration order.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger: log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen installs the signal handler. SIGINT and SIGTERM both trigger a
// full shutdown.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(componentTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done closes when shutdown has been requested.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
