package app

import (
	"tasklight/internal/gui"
	"tasklight/internal/logger"
)

// Lifecycle tears components down in reverse dependency order when the
// session ends. Todos live only in process memory, so teardown is where
// they cease to exist.
type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(guiManager *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: guiManager,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
