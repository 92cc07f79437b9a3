package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/condorcet/condorcet"
	"github.com/katalvlaran/condorcet/duelgraph"
	"github.com/katalvlaran/condorcet/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "vote.max_candidates")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// MaxCandidatesLimit is the largest accepted vote.max_candidates. Schulze
// is cubic in the candidate count.
const MaxCandidatesLimit = 4096

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateVote()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateVote validates the VoteConfig
func (c *Config) validateVote() []ValidationError {
	var errors []ValidationError

	if _, err := condorcet.ParseMethod(c.Vote.Method); err != nil {
		names := make([]string, 0, len(condorcet.Methods()))
		for _, m := range condorcet.Methods() {
			names = append(names, m.String())
		}
		errors = append(errors, ValidationError{
			Field:   "vote.method",
			Value:   c.Vote.Method,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(names, ", ")),
		})
	}

	if c.Vote.MaxCandidates < 1 {
		errors = append(errors, ValidationError{
			Field:   "vote.max_candidates",
			Value:   c.Vote.MaxCandidates,
			Message: "must be positive",
		})
	}
	if c.Vote.MaxCandidates > MaxCandidatesLimit {
		errors = append(errors, ValidationError{
			Field:   "vote.max_candidates",
			Value:   c.Vote.MaxCandidates,
			Message: fmt.Sprintf("exceeds maximum of %d (default %d)", MaxCandidatesLimit, duelgraph.DefaultMaxNodes),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.Levels(), ", ")),
		})
	}

	if c.Logging.Format != "" && !logging.ValidFormat(c.Logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.Formats(), ", ")),
		})
	}

	return errors
}
