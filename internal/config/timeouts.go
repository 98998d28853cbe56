package config

import "time"

// Publisher timeout constants
const (
	// Google Sheets publish: capacity check, clear and full rewrite
	SheetsPublishTimeout = 60 * time.Second

	// BigQuery publish: table metadata, creation and streaming insert
	BigQueryPublishTimeout = 2 * time.Minute

	// SSH deploy: dial and SCP transfer
	DeployDialTimeout     = 30 * time.Second
	DeployTransferTimeout = 2 * time.Minute
)

// PublishTimeouts bounds the network I/O of each optional publisher.
// Publishing is attempted once; there are no retries.
type PublishTimeouts struct {
	Sheets         time.Duration
	BigQuery       time.Duration
	DeployDial     time.Duration
	DeployTransfer time.Duration
}

// DefaultPublishTimeouts provides sensible defaults
var DefaultPublishTimeouts = PublishTimeouts{
	Sheets:         SheetsPublishTimeout,
	BigQuery:       BigQueryPublishTimeout,
	DeployDial:     DeployDialTimeout,
	DeployTransfer: DeployTransferTimeout,
}

// Valid reports whether every timeout is positive
func (t PublishTimeouts) Valid() bool {
	return t.Sheets > 0 && t.BigQuery > 0 && t.DeployDial > 0 && t.DeployTransfer > 0
}
