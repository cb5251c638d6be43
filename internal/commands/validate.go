package commands

import (
	"fmt"

	"upside-down-research.com/oss/searchengine/internal/validation"
)

// ValidateCommand validates a problem input file.
type ValidateCommand struct {
	ProblemFile string `arg:"" name:"problem" help:"Problem file to validate" type:"path"`
}

// Run executes the validate command.
func (cmd *ValidateCommand) Run() error {
	fmt.Printf("Validating problem file: %s\n\n", cmd.ProblemFile)

	result := validation.ValidateProblemFile(cmd.ProblemFile)
	validation.PrintValidationResult(result)

	if !result.IsValid() {
		return fmt.Errorf("validation failed")
	}

	return nil
}
