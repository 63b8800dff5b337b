// Package json5 implements a JSON5 codec: a lexer/parser that turns JSON5
// source text into a [Value] tree, and a formatter that turns a [Value] tree
// back into text.
//
// JSON5 is a superset of JSON (ECMA-404) permitting comments, unquoted
// object keys, single-quoted strings, hexadecimal literals, leading and
// trailing decimal points, explicit '+' signs, trailing commas, and line
// continuations inside strings. See https://json5.org for the full grammar.
//
// # Values
//
// A [Value] is a tagged variant over seven kinds: Null, Bool, Int, Float, Str,
// Array, and Object. Parsing always produces one of these; formatting always
// consumes one. Objects preserve insertion order and resolve duplicate keys
// by keeping the last value written, matching the order the key first
// appeared in the source.
//
//	v, err := json5.Parse(`{ unquoted: 'hi', n: .5e2 }`)
//	s, err := v.Get("unquoted").Str()
//
// # Parsing and formatting
//
// [Parse] consumes a full UTF-8 text buffer and returns the root [Value] or
// a [*ParseError] describing the first malformed construct encountered.
// [Format] serializes a [Value] back to text, compact or indented; the
// output is always a strict JSON subset of JSON5, so it round-trips through
// any conforming JSON5 reader.
//
// Streaming adapters over [io.Reader]/[io.Writer] live in the jsonio
// subpackage; this package itself operates on in-memory text only.
package json5
