// Package logging builds the slog loggers used by yamlconf: JSON or text output with a level
// parsed from configuration.
package logging
