// Package history persists a record of compression and benchmark runs.
//
// The store is a single SQLite database under the configured state directory.
// A flock-guarded lock file beside the database serializes concurrent squish
// processes so two invocations never interleave writes to the state dir.
package history
