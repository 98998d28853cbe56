package processing

import (
	"ncth_weapons/internal/deployment"
	"ncth_weapons/internal/export"
	"ncth_weapons/internal/sheets"
	"ncth_weapons/internal/tables"
	"ncth_weapons/internal/warehouse"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ TableLoaderInterface = (*tables.Loader)(nil)
	_ SinkInterface        = (*export.CSVSink)(nil)
	_ SinkInterface        = (*export.XLSXSink)(nil)
	_ SinkInterface        = (*export.SQLiteSink)(nil)
	_ PublisherInterface   = (*sheets.Publisher)(nil)
	_ PublisherInterface   = (*warehouse.Publisher)(nil)
	_ DeployerInterface    = (*deployment.SSHDeployer)(nil)
	_ sheets.SheetsAPI     = (*sheets.Client)(nil)
)
