package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
// Publisher settings come from the environment; the input directory, output
// path and format are filled in from command line arguments.
type Config struct {
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SheetName       string `env:"SHEET_NAME" envDefault:"NCTH Weapons"`
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`

	BigQueryProject string `env:"BIGQUERY_PROJECT"`
	BigQueryDataset string `env:"BIGQUERY_DATASET"`
	BigQueryTable   string `env:"BIGQUERY_TABLE"`

	DeployURL     string `env:"DEPLOY_URL"`
	DeployKeyFile string `env:"DEPLOY_KEY_FILE" envDefault:"deploy.pem"`

	InputDir   string
	OutputPath string
	Format     string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
// Logs always go to stderr; stdout is reserved for table output.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads publisher configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	bq := []string{config.BigQueryProject, config.BigQueryDataset, config.BigQueryTable}
	set := 0
	for _, v := range bq {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set != 0 && set != len(bq) {
		return nil, fmt.Errorf("BIGQUERY_PROJECT, BIGQUERY_DATASET and BIGQUERY_TABLE must be set together")
	}

	if config.SpreadsheetID != "" && strings.TrimSpace(config.SheetName) == "" {
		return nil, fmt.Errorf("SHEET_NAME must not be empty when SPREADSHEET_ID is set")
	}

	return &config, nil
}

// SheetsEnabled reports whether rows should be published to Google Sheets
func (c *Config) SheetsEnabled() bool {
	return c.SpreadsheetID != ""
}

// BigQueryEnabled reports whether rows should be streamed into BigQuery
func (c *Config) BigQueryEnabled() bool {
	return c.BigQueryProject != "" && c.BigQueryDataset != "" && c.BigQueryTable != ""
}

// DeployEnabled reports whether the exported file should be uploaded over SSH
func (c *Config) DeployEnabled() bool {
	return c.DeployURL != ""
}
