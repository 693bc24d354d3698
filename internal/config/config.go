// Package config loads the engine's process-wide settings from the
// environment via caarlos0/env, following the same env-tag convention the
// loan and logging packages already use.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the top-level configuration parsed from the environment.
// cmd/proformademo reads only ReportOutputDir; the other fields are parsed
// but nothing in the repository consults them through AppConfig.
type AppConfig struct {
	// TaxYear is parsed from TAX_YEAR and not consulted; bonus rates are
	// looked up by each deal's placed-in-service year.
	TaxYear int `env:"TAX_YEAR" envDefault:"2026"`

	// DefaultStateTaxRate is parsed from DEFAULT_STATE_TAX_RATE and not
	// consulted; a deal's state rate comes from its InvestorTaxProfile.
	DefaultStateTaxRate string `env:"DEFAULT_STATE_TAX_RATE" envDefault:"0.05"`

	// ReportOutputDir is where cmd/proformademo writes its CSV report and
	// amortization chart.
	ReportOutputDir string `env:"REPORT_OUTPUT_DIR" envDefault:"./reports"`

	// ReportFormat is parsed from REPORT_FORMAT and not consulted;
	// cmd/proformademo always writes CSV.
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"csv"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"true"`
	LogPath  string `env:"LOG_PATH" envDefault:""`
}

// Load parses AppConfig from the process environment.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return &cfg, nil
}
