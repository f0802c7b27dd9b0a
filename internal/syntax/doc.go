// Package syntax implements a parser for FTL resource files.
//
// The grammar is line oriented. A message starts in column 1 with an
// identifier followed by "=" and an optional inline pattern. Indented lines
// that follow either continue the value (joined with a newline) or declare a
// trait with the `[key] pattern` form, where a leading "*" marks the default
// trait. Lines starting with "#" are comments. A blank line ends the current
// message.
//
// Patterns are text with embedded placeables: `{ other-message }`. The
// characters "{", "}" and "\" can be escaped with a backslash.
//
// Errors are reported as hcl.Diagnostics. The parser recovers at the next line
// starting in column 1, so a single call reports every malformed entry of a
// file. The returned Resource contains the entries that parsed cleanly.
package syntax
