package processing

import (
	"context"

	"ncth_weapons/internal/app"
)

// TableLoaderInterface defines the source table loading used by Processor
type TableLoaderInterface interface {
	Load() (app.Tables, error)
}

// SinkInterface defines the primary output written by Processor
type SinkInterface interface {
	Write(ctx context.Context, rows []app.OutputRow) error
}

// PublisherInterface defines an optional remote copy of the final table
type PublisherInterface interface {
	Name() string
	Publish(ctx context.Context, rows []app.OutputRow) error
}

// DeployerInterface defines the upload of the exported file
type DeployerInterface interface {
	DeployFile(localPath, filename string) error
	Disconnect() error
}
