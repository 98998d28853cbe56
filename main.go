package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ncth_weapons/internal/app"
	"ncth_weapons/internal/deployment"
	"ncth_weapons/internal/export"
	"ncth_weapons/internal/processing"
	"ncth_weapons/internal/sheets"
	"ncth_weapons/internal/tables"
	"ncth_weapons/internal/warehouse"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	format := flag.String("format", "", "Output format: csv, xlsx or sqlite (default: inferred from the output extension, else csv)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input-dir> [output]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Reads Weapons.xml, Items.xml and AmmoStrings.xml from <input-dir> and writes\n")
		fmt.Fprintf(flag.CommandLine.Output(), "the NCTH weapon table to [output], or CSV to stdout when omitted.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	config.InputDir = flag.Arg(0)
	config.OutputPath = flag.Arg(1)

	outputFormat, err := export.ResolveFormat(*format, config.OutputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid output format")
	}
	config.Format = string(outputFormat)

	log.Info().
		Str("input_dir", config.InputDir).
		Str("output", outputName(config.OutputPath)).
		Str("format", config.Format).
		Msg("Starting NCTH weapon export")

	ctx := context.Background()

	sink, err := export.NewSink(outputFormat, config.OutputPath, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output sink")
	}

	processor := processing.NewProcessor(tables.NewLoader(config.InputDir), sink, config.OutputPath)

	if config.SheetsEnabled() {
		sheetsClient, err := sheets.NewClient(ctx, config.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		processor.AddPublisher(sheets.NewPublisher(sheetsClient, config.SpreadsheetID, config.SheetName))
	}

	if config.BigQueryEnabled() {
		bq, err := warehouse.NewPublisher(ctx, config.BigQueryProject, config.BigQueryDataset, config.BigQueryTable, config.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create BigQuery client")
		}
		defer bq.Close()
		processor.AddPublisher(bq)
	}

	if config.DeployEnabled() {
		processor.SetDeployer(deployment.NewSSHDeployer(config.DeployURL, config.DeployKeyFile))
	}

	if _, err := processor.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to export weapon table")
	}
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
