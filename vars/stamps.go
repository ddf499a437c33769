package vars

import (
	"fmt"
	"os"
	"strings"
)

// LoadStamps reads workspace status files into a single
// Context, later files overriding earlier ones.
func LoadStamps(infoFiles []string) (*Context, error) {
	const errCtx = "loading stamps"

	stamps := New()

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		stamps.Merge(ParseStamps(string(content)))
	}

	return stamps, nil
}

// ParseStamps parses workspace status text. Each line is
// "KEY VALUE" split at the first space, with any line
// ending removed; lines without a space are skipped.
func ParseStamps(content string) *Context {
	stamps := New()

	for line := range strings.Lines(content) {
		key, val, ok := strings.Cut(
			strings.TrimRight(line, "\r\n"), " ",
		)
		if ok {
			stamps.Insert(key, val)
		}
	}

	return stamps
}
