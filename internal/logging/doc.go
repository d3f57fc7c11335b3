// Package logging provides the console logr.Logger used by the CLI.
//
// Messages are written as plain lines, one per call, followed by any
// key/value pairs in key=value form. Verbosity is fixed when the logger
// is created; V(n) calls above it are dropped.
package logging
