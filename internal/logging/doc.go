// Package logging builds the slog loggers used across squish.
//
// Two handler formats are supported: a human-friendly console handler for
// terminal use and a JSON handler for machine consumption. Output always goes
// to stderr so tables and progress bars own stdout, and is optionally teed to
// a file under the configured log directory.
package logging
