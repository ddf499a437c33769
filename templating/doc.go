// Package templating expands HTML-like template files into HTML.
//
// The Engine type holds configuration (stamp info files, data files,
// sanitization) and expands templates via the Expand method, which reads
// a template file, builds a vars.Context from the configured sources and
// explicit NAME=VALUE variables, runs the tamper pipeline and writes the
// result.
package templating
