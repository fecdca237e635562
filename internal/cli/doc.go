// Package cli parses command-line arguments into an app.Config. It owns the
// usage text and the mapping from bad flags to exit codes, and nothing else.
package cli
