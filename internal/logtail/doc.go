// Package logtail reads back the jester session log.
//
// The log file written by internal/logging holds one zerolog JSON event per
// line. Tail keeps only the newest lines while scanning, so large logs are
// read in bounded memory. Render prints them through zerolog's console
// writer, falling back to the raw line for anything that does not parse.
package logtail
