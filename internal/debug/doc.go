// Package debug provides debug logging functionality for rngit.
//
// When enabled via the --debug-log flag or the debug_log config key, it
// logs repository queries, refresh timings and skipped status records.
package debug
