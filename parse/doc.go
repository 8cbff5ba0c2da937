// Package parse provides JSON parsing support.
package parse
