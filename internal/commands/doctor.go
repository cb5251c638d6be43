package commands

import (
	"fmt"

	"upside-down-research.com/oss/searchengine/internal/config"
	"upside-down-research.com/oss/searchengine/internal/validation"
)

// DoctorCommand runs system diagnostics.
type DoctorCommand struct {
	Config string `name:"config" help:"Configuration file path" type:"path"`
}

// Run executes the doctor command.
func (cmd *DoctorCommand) Run() error {
	fmt.Println("Running searchengine diagnostics...")
	fmt.Println()

	allOk := true

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		fmt.Printf("FAIL Config: %v\n", err)
		return fmt.Errorf("validation failed")
	}

	result := validation.ValidateConfig(cfg)
	if result.IsValid() {
		fmt.Println("OK   Configuration: valid")
	} else {
		fmt.Println("FAIL Configuration: has errors")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e.Error())
		}
		allOk = false
	}
	if len(result.Warnings) > 0 {
		fmt.Println("WARN Configuration: has warnings")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s: %s\n", w.Field, w.Message)
		}
	}

	if cfg.Output.Directory != "" {
		if err := validation.ValidateOutputDirectory(cfg.Output.Directory); err == nil {
			fmt.Printf("OK   Output directory: %s (writable)\n", cfg.Output.Directory)
		} else {
			fmt.Printf("FAIL Output directory: %v\n", err)
			allOk = false
		}
	}

	if cfg.Metrics.PushGatewayAddr != "" {
		fmt.Printf("OK   Prometheus Pushgateway configured: %s\n", cfg.Metrics.PushGatewayAddr)
	} else {
		fmt.Println("--   Prometheus Pushgateway: not configured (metrics recorded locally only)")
	}
	if cfg.Metrics.InfluxURL != "" && cfg.Metrics.InfluxToken != "" && cfg.Metrics.InfluxOrg != "" && cfg.Metrics.InfluxBucket != "" {
		fmt.Printf("OK   InfluxDB configured: %s\n", cfg.Metrics.InfluxURL)
	} else {
		fmt.Println("--   InfluxDB: not configured")
	}

	fmt.Println()
	if allOk {
		fmt.Println("All systems ready!")
		return nil
	}
	fmt.Println("Some issues found - please fix before running")
	return fmt.Errorf("validation failed")
}
