// Package ast holds the template tree and the two stages that work on it.
//
// Build consumes the lexer's tokens and produces a single rooted Tree.
// The first element (or literal) seen becomes the root and every later
// element and literal is appended directly to it: open tags are not
// tracked on a stack, so nesting deeper than one level is flattened into
// siblings. Closing tags and braces carry no structure and are dropped.
//
// Bind walks the descendants of the root and records the value of each
// Variable found in a Lookuper. Variables with no value stay unbound.
package ast
