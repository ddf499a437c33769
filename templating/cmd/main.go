// Package main provides the tamper CLI that expands an
// HTML-like template with {{ name }} placeholders using
// stamp info files, data files and explicit variables.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/devanbenz/ssg-parser-demo/templating"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "tamper"

	var (
		stampInfoFile arrayFlags
		dataFile      arrayFlags
		variable      arrayFlags
		output        string
		tpl           string
		executable    bool
		sanitize      bool
		dumpTree      bool
	)

	flag.Var(
		&stampInfoFile,
		"stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	flag.Var(
		&dataFile,
		"data_file",
		"YAML or JSON data file path (repeatable)",
	)

	flag.Var(
		&variable,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.BoolVar(
		&sanitize, "sanitize", false,
		"Sanitize the rendered HTML",
	)

	flag.BoolVar(
		&dumpTree, "dump_tree", false,
		"Print the template tree to stderr",
	)

	flag.Parse()

	en := templating.Engine{
		StampInfoFiles: stampInfoFile,
		DataFiles:      dataFile,
		Sanitize:       sanitize,
	}

	if dumpTree {
		en.DumpTree = os.Stderr
	}

	if err := en.Expand(
		tpl, output, variable, executable,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
