package processing

import (
	"context"
	"fmt"

	"ncth_weapons/internal/domain/weapon"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RunSummary describes one completed run
type RunSummary struct {
	WeaponsConsidered int
	RowsExported      int
	Drops             map[weapon.DropReason]int
	Published         []string
	Deployed          bool
}

// Processor runs load, build, export and publish in order
type Processor struct {
	loader     TableLoaderInterface
	sink       SinkInterface
	publishers []PublisherInterface
	deployer   DeployerInterface
	outputPath string
}

// NewProcessor creates a processor writing to sink. outputPath is the file
// the sink writes, empty for stdout.
func NewProcessor(loader TableLoaderInterface, sink SinkInterface, outputPath string) *Processor {
	return &Processor{
		loader:     loader,
		sink:       sink,
		outputPath: outputPath,
	}
}

// AddPublisher registers an optional publisher, run after the sink
func (p *Processor) AddPublisher(publisher PublisherInterface) {
	p.publishers = append(p.publishers, publisher)
}

// SetDeployer registers the upload of the exported file
func (p *Processor) SetDeployer(deployer DeployerInterface) {
	p.deployer = deployer
}

// Run executes one export. Loading failures abort before anything is
// written; per-weapon rejections are counted and never fatal.
func (p *Processor) Run(ctx context.Context) (*RunSummary, error) {
	tables, err := p.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load source tables: %w", err)
	}

	result := weapon.BuildRows(tables)

	summary := &RunSummary{
		WeaponsConsidered: result.Considered,
		RowsExported:      len(result.Rows),
		Drops:             result.DropCounts(),
	}

	logRejections(result.Rejections)

	if err := p.sink.Write(ctx, result.Rows); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	for _, publisher := range p.publishers {
		if err := publisher.Publish(ctx, result.Rows); err != nil {
			return nil, fmt.Errorf("failed to publish to %s: %w", publisher.Name(), err)
		}
		summary.Published = append(summary.Published, publisher.Name())
	}

	if p.deployer != nil {
		deployed, err := p.deploy()
		if err != nil {
			return nil, err
		}
		summary.Deployed = deployed
	}

	logSummary(summary)

	return summary, nil
}

func (p *Processor) deploy() (bool, error) {
	if p.outputPath == "" {
		log.Warn().Msg("Skipping deploy: output was written to stdout")
		return false, nil
	}

	defer func() {
		if err := p.deployer.Disconnect(); err != nil {
			log.Warn().Err(err).Msg("Failed to close SSH connection")
		}
	}()

	if err := p.deployer.DeployFile(p.outputPath, ""); err != nil {
		return false, fmt.Errorf("failed to deploy %s: %w", p.outputPath, err)
	}
	return true, nil
}

func logRejections(rejections []weapon.Rejection) {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}
	for _, rej := range rejections {
		event := log.Debug().
			Uint32("weapon_id", rej.WeaponIndex).
			Str("weapon_name", rej.WeaponName).
			Str("reason", rej.Reason.String())
		if rej.Field != "" {
			event = event.Str("field", rej.Field)
		}
		event.Msg("Skipped weapon")
	}
}

func logSummary(summary *RunSummary) {
	drops := zerolog.Dict()
	for _, reason := range dropReasons {
		if n := summary.Drops[reason]; n > 0 {
			drops = drops.Int(reason.String(), n)
		}
	}

	log.Info().
		Int("weapons", summary.WeaponsConsidered).
		Int("rows", summary.RowsExported).
		Dict("dropped", drops).
		Strs("published", summary.Published).
		Bool("deployed", summary.Deployed).
		Msg("Exported NCTH weapon table")
}

var dropReasons = []weapon.DropReason{
	weapon.DropNoCaliber,
	weapon.DropMissingItem,
	weapon.DropMissingAmmo,
	weapon.DropKeyMismatch,
	weapon.DropMissingField,
	weapon.DropUnknownCategory,
	weapon.DropInvalidFireRate,
}
