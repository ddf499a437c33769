package vars_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanbenz/ssg-parser-demo/vars"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(pa, []byte(content), 0o600))

	return pa
}

func TestLoadStamps_multiple_files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf1 := writeTemp(
		t, dir, "s1.txt",
		"BUILD_USER alice\nBUILD_HOST ci-01\n",
	)
	sf2 := writeTemp(
		t, dir, "s2.txt",
		"BUILD_HOST ci-02\nSTABLE_NOTE hello world\nNOSPACE\n",
	)

	stamps, err := vars.LoadStamps([]string{sf1, sf2})
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{"BUILD_HOST", "BUILD_USER", "STABLE_NOTE"},
		stamps.Keys(),
	)

	got, _ := stamps.Lookup("BUILD_HOST")
	assert.Equal(t, "ci-02", got)

	got, _ = stamps.Lookup("STABLE_NOTE")
	assert.Equal(t, "hello world", got)
}

func TestLoadStamps_no_files(t *testing.T) {
	t.Parallel()

	stamps, err := vars.LoadStamps(nil)
	require.NoError(t, err)
	assert.Zero(t, stamps.Len())
}

func TestLoadStamps_missing_file(t *testing.T) {
	t.Parallel()

	_, err := vars.LoadStamps([]string{"/nonexistent/stamp.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stamps")
}

func TestParseStamps(t *testing.T) {
	t.Parallel()

	stamps := vars.ParseStamps(
		"BUILD_USER alice\r\nEMPTY \nNOSPACE\n\nNOTE two words",
	)

	assert.Equal(
		t,
		[]string{"BUILD_USER", "EMPTY", "NOTE"},
		stamps.Keys(),
	)

	got, _ := stamps.Lookup("BUILD_USER")
	assert.Equal(t, "alice", got)

	got, _ = stamps.Lookup("EMPTY")
	assert.Empty(t, got)

	got, _ = stamps.Lookup("NOTE")
	assert.Equal(t, "two words", got)
}
