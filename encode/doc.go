// Package encode renders ir.Node trees as JSON text, compact or
// pretty-printed, with optional ANSI colors for terminal output.
package encode
