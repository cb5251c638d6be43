package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"upside-down-research.com/oss/searchengine/internal/config"
	"upside-down-research.com/oss/searchengine/internal/frontier"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Message string
	Fix     string // Suggested fix
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Fix != "" {
		msg += fmt.Sprintf("\n  Fix: %s", e.Fix)
	}
	return msg
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no errors.
func (v *ValidationResult) IsValid() bool {
	return len(v.Errors) == 0
}

// AddError adds a validation error.
func (v *ValidationResult) AddError(field, message, fix string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Fix:     fix,
	})
}

// AddWarning adds a validation warning.
func (v *ValidationResult) AddWarning(field, message, fix string) {
	v.Warnings = append(v.Warnings, ValidationError{
		Field:   field,
		Message: message,
		Fix:     fix,
	})
}

var validStrategies = map[string]bool{
	string(frontier.AStar): true,
	string(frontier.GBFS):  true,
	string(frontier.BFS):   true,
	string(frontier.DFS):   true,
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if !validStrategies[cfg.Search.DefaultStrategy] {
		result.AddError("search.default_strategy",
			fmt.Sprintf("invalid strategy %q", cfg.Search.DefaultStrategy),
			"use one of: A*, GBFS, BFS, DFS")
	}

	if cfg.Search.MaxIterations < 1 {
		result.AddError("search.max_iterations",
			"must be at least 1",
			"set search.max_iterations to a positive number")
	}

	if cfg.Output.Directory == "" {
		result.AddError("output.directory",
			"output directory not specified",
			"set output.directory in config or use --dump flag")
	} else if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		result.AddError("output.directory",
			fmt.Sprintf("cannot create directory: %v", err),
			fmt.Sprintf("ensure %s is writable", cfg.Output.Directory))
	}

	influxFields := []string{cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket}
	influxSet := 0
	for _, f := range influxFields {
		if f != "" {
			influxSet++
		}
	}
	if influxSet > 0 && influxSet < len(influxFields) {
		result.AddWarning("metrics.influx",
			"influx_url, influx_token, influx_org and influx_bucket must all be set to enable InfluxDB recording",
			"fill in the remaining fields, or clear all four to disable")
	}

	return result
}

// ValidateProblemFile validates a problem input file.
func ValidateProblemFile(path string) *ValidationResult {
	result := &ValidationResult{}

	if path == "" {
		result.AddError("problem_file",
			"no problem file provided",
			"provide a JSON file describing the initial state")
		return result
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError("problem_file",
				fmt.Sprintf("file not found: %s", path),
				"check the file path and try again")
		} else {
			result.AddError("problem_file",
				fmt.Sprintf("cannot access file: %v", err),
				"check file permissions")
		}
		return result
	}

	if info.IsDir() {
		result.AddError("problem_file",
			fmt.Sprintf("%s is a directory", path),
			"provide a file, not a directory")
		return result
	}

	if info.Size() == 0 {
		result.AddError("problem_file",
			"file is empty",
			"add the initial state and goal to the file")
		return result
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.AddError("problem_file",
			fmt.Sprintf("cannot read file: %v", err),
			"check file permissions")
		return result
	}

	if len(data) > 10_000_000 {
		result.AddWarning("problem_file",
			"file is very large (>10MB)",
			"large initial states slow every Apply call")
	}

	return result
}

// ValidateOutputDirectory checks if output directory is usable.
func ValidateOutputDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	testFile := filepath.Join(path, ".searchengine-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return fmt.Errorf("cannot write to output directory: %w", err)
	}
	os.Remove(testFile)

	return nil
}

// PrintValidationResult prints validation results.
func PrintValidationResult(result *ValidationResult) {
	if len(result.Errors) > 0 {
		fmt.Println("Validation Errors:")
		for _, err := range result.Errors {
			fmt.Printf("  - %s\n", err.Error())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warn := range result.Warnings {
			fmt.Printf("  - %s: %s\n", warn.Field, warn.Message)
			if warn.Fix != "" {
				fmt.Printf("    Suggestion: %s\n", warn.Fix)
			}
		}
		fmt.Println()
	}

	if result.IsValid() && len(result.Warnings) == 0 {
		fmt.Println("All validations passed")
	}
}
