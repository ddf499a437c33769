package templating

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/devanbenz/ssg-parser-demo/tamper"
	"github.com/devanbenz/ssg-parser-demo/vars"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// Engine expands templates using stamp info files, data
// files and explicit variables.
type Engine struct {
	StampInfoFiles []string
	DataFiles      []string

	// Sanitize passes the rendered document through a
	// user-generated-content HTML policy before writing.
	Sanitize bool

	// DumpTree, when set, receives the template tree
	// before binding.
	DumpTree io.Writer
}

// Expand reads a template, substitutes variables, and
// writes the result. If tplPath is empty it reads from
// stdin; if outPath is empty it writes to stdout. If
// executable is true the output file receives mode 0777
// instead of 0666.
//
// The context is assembled in order, later sources
// overriding earlier ones:
//  1. Stamp files, one "KEY VALUE" per line.
//  2. Data files, flat YAML or JSON mappings.
//  3. Variables NAME=VALUE, with VALUE expanded against
//     the stamps using single-brace tags.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	variables []string,
	executable bool,
) error {
	const errCtx = "expanding template"

	ctx, err := en.Context(variables)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tpl, err := en.readTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out, closer, err := en.openOutput(outPath, executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer closer()
	}

	name := tplPath
	if name == "" {
		name = "<stdin>"
	}

	n, err := en.execute(out, name, tpl, ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if outPath != "" {
		slog.Info(
			"wrote output",
			"path", outPath,
			"bytes", n,
		)
	}

	return nil
}

// Context builds the variable context from the configured
// stamp and data files plus the given NAME=VALUE
// variables.
func (en *Engine) Context(variables []string) (*vars.Context, error) {
	const errCtx = "building context"

	stamps, err := vars.LoadStamps(en.StampInfoFiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := vars.New()
	ctx.Merge(stamps)

	for _, df := range en.DataFiles {
		data, err := vars.LoadFile(df)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		ctx.Merge(data)
	}

	for _, vr := range variables {
		if err := ctx.Assign(vr, stamps); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return ctx, nil
}

// Execute compiles tpl, renders it against ctx and writes
// the HTML to w. A template that produces no tree writes
// nothing.
func (en *Engine) Execute(
	w io.Writer,
	tpl string,
	ctx *vars.Context,
) error {
	_, err := en.execute(w, "<inline>", tpl, ctx)

	return err
}

// execute is Execute for a template identified by name in
// log records. It returns the number of bytes written.
func (en *Engine) execute(
	w io.Writer,
	name string,
	tpl string,
	ctx *vars.Context,
) (int, error) {
	const errCtx = "executing template"

	compiled := tamper.New(tpl)

	if en.DumpTree != nil {
		if err := compiled.Dump(en.DumpTree); err != nil {
			return 0, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	html, ok := compiled.Render(ctx)
	if !ok {
		slog.Warn(
			"template produced no output",
			"template", name,
		)

		return 0, nil
	}

	if en.Sanitize {
		html = sanitizer().Sanitize(html)
	}

	n, err := io.WriteString(w, html)
	if err != nil {
		return n, fmt.Errorf("%s: %w", errCtx, err)
	}

	return n, nil
}

func sanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})

	return ugcPolicy
}

// readTemplate returns the template text from tplPath,
// or from stdin when tplPath is empty.
func (en *Engine) readTemplate(tplPath string) (string, error) {
	const errCtx = "reading template"

	var (
		content []byte
		err     error
	)

	if tplPath == "" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(tplPath) //nolint:gosec // paths from CLI flags
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(content), nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns stdout. The returned
// closer function must be called to finalize the file
// (may be nil for stdout).
func (en *Engine) openOutput(
	outPath string,
	executable bool,
) (io.Writer, func(), error) {
	const errCtx = "opening output"

	if outPath == "" {
		return os.Stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI flags
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, func() {
		_ = fi.Close() //nolint:errcheck // best-effort close
	}, nil
}
