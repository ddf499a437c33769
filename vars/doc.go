// Package vars provides the key/value Context consulted when binding
// template placeholders.
//
// A Context is filled during setup, either directly with Insert or from
// external sources: Bazel-style workspace status files ("KEY VALUE" per
// line) via LoadStamps, flat YAML or JSON documents via Decode and
// LoadFile, and NAME=VALUE assignments via Assign. Assigned values may
// reference existing keys with single-brace {KEY} placeholders, which are
// expanded with valyala/fasttemplate. Once binding starts the Context is
// only read.
package vars
