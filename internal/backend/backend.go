package backend

import (
	"context"
	"errors"
	"fmt"

	"tasklight/internal/config"
	"tasklight/internal/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// Initializer is the single contract the bootstrap sequence consumes: one
// call, before the UI becomes interactive, which may fail.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// FromConfig selects the initializer matching the backend configuration.
func FromConfig(cfg config.BackendConfig, log logger.Logger) Initializer {
	if !cfg.Enabled {
		return Noop{logger: log}
	}
	return NewTableBackend(cfg, log)
}

// TableBackend bootstraps the remote table the app's todos would sync to,
// creating it when it does not exist yet.
type TableBackend struct {
	connectionString string
	table            string
	logger           logger.Logger
}

func NewTableBackend(cfg config.BackendConfig, log logger.Logger) *TableBackend {
	return &TableBackend{
		connectionString: cfg.ConnectionString,
		table:            cfg.Table,
		logger:           log,
	}
}

func (b *TableBackend) Initialize(ctx context.Context) error {
	if b.connectionString == "" {
		return errors.New("backend enabled but connection string is not configured")
	}

	b.logger.Info("Backend", "remote initialization started", map[string]interface{}{
		"table": b.table,
	})

	svc, err := aztables.NewServiceClientFromConnectionString(b.connectionString, nil)
	if err != nil {
		return fmt.Errorf("create table service client: %w", err)
	}

	client := svc.NewClient(b.table)
	if _, err := client.CreateTable(ctx, nil); err != nil {
		var respErr *azcore.ResponseError
		if !(errors.As(err, &respErr) && respErr.ErrorCode == string(aztables.TableAlreadyExists)) {
			return fmt.Errorf("ensure table %s: %w", b.table, err)
		}
	}

	b.logger.Info("Backend", "remote initialization complete", map[string]interface{}{
		"table": b.table,
	})
	return nil
}

// Noop is the offline initializer used when remote sync is disabled.
type Noop struct {
	logger logger.Logger
}

func (n Noop) Initialize(ctx context.Context) error {
	n.logger.Info("Backend", "remote sync disabled, skipping initialization", nil)
	return nil
}
