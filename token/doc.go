// Package token provides tokenization support for JSON text.
//
// [Tokenizer] scans one token at a time over a byte slice, tracking the
// byte offset used to position parse errors.
package token
