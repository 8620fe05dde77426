package backend

import (
	"context"
	"testing"

	"tasklight/internal/config"
	"tasklight/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestFromConfigSelectsNoopWhenDisabled(t *testing.T) {
	init := FromConfig(config.BackendConfig{Enabled: false}, logger.Nop{})
	assert.IsType(t, Noop{}, init)
}

func TestFromConfigSelectsTableBackendWhenEnabled(t *testing.T) {
	init := FromConfig(config.BackendConfig{Enabled: true, Table: "todos"}, logger.Nop{})
	assert.IsType(t, &TableBackend{}, init)
}

func TestNoopInitializeSucceeds(t *testing.T) {
	assert.NoError(t, Noop{logger: logger.Nop{}}.Initialize(context.Background()))
}

func TestTableBackendRequiresConnectionString(t *testing.T) {
	b := NewTableBackend(config.BackendConfig{Enabled: true, Table: "todos"}, logger.Nop{})

	err := b.Initialize(context.Background())
	assert.ErrorContains(t, err, "connection string")
}
