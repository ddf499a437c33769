// Package unparser serializes a bound template tree back into HTML.
// Elements are always written as a matched <tag></tag> pair around their
// children. Bound variables are written verbatim, without escaping, and
// unbound variables produce no text.
package unparser
