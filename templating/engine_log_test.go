package templating_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanbenz/ssg-parser-demo/templating"
)

// captureLogs routes the default slog logger into a
// buffer for the duration of the test. Tests using it must
// not run in parallel.
func captureLogs(tb testing.TB) *bytes.Buffer {
	tb.Helper()

	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(
		&buf, &slog.HandlerOptions{Level: slog.LevelDebug},
	)))

	tb.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func TestExpand_logs_written_output(t *testing.T) {
	logs := captureLogs(t)

	dir := t.TempDir()

	tplPath := writeTemp(
		t, dir, "tpl.html", "<p>{{ value }}</p>",
	)

	outPath := filepath.Join(dir, "out.html")

	en := templating.Engine{}

	require.NoError(t, en.Expand(
		tplPath, outPath, []string{"value=foobar"}, false,
	))

	got := logs.String()
	assert.Contains(t, got, `level=INFO msg="wrote output"`)
	assert.Contains(t, got, "path="+outPath)
	assert.Contains(t, got, "bytes=13")
}

func TestExpand_logs_empty_template(t *testing.T) {
	logs := captureLogs(t)

	dir := t.TempDir()

	tplPath := writeTemp(t, dir, "tpl.html", "   ")

	en := templating.Engine{}

	require.NoError(t, en.Expand(tplPath, "", nil, false))

	got := logs.String()
	assert.Contains(
		t, got,
		`level=WARN msg="template produced no output"`,
	)
	assert.Contains(t, got, "template="+tplPath)
	assert.NotContains(t, got, "wrote output")
}
