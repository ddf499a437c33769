package vars

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Format is the encoding of a data file.
type Format int

const (
	// FormatYAML is a YAML mapping.
	FormatYAML Format = iota
	// FormatJSON is a JSON object.
	FormatJSON
)

var (
	// ErrUnknownFormat is returned for data files whose
	// extension is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("unknown data file format")

	// ErrNotScalar is returned when a data file value is a
	// mapping or a sequence. Placeholder names are plain
	// words, so only top-level scalars can be bound.
	ErrNotScalar = errors.New("value is not a scalar")
)

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode reads a flat mapping from r. Strings are stored
// as-is, other scalars by their source text (YAML) or
// number literal (JSON), and null values as the empty
// string. An empty document yields an empty Context.
func Decode(r io.Reader, format Format) (*Context, error) {
	const errCtx = "decoding data"

	var (
		values map[string]string
		err    error
	)

	switch format {
	case FormatYAML:
		values, err = decodeYAML(r)
	case FormatJSON:
		values, err = decodeJSON(r)
	default:
		return nil, fmt.Errorf(
			"%s: %w: %d", errCtx, ErrUnknownFormat, int(format),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := New()
	for key, val := range values {
		ctx.Insert(key, val)
	}

	return ctx, nil
}

func decodeYAML(r io.Reader) (map[string]string, error) {
	var raw map[string]yamlScalar

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	values := make(map[string]string, len(raw))

	for key, val := range raw {
		str, err := val.text()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		values[key] = str
	}

	return values, nil
}

func decodeJSON(r io.Reader) (map[string]string, error) {
	var raw map[string]interface{}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	err := dec.Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	values := make(map[string]string, len(raw))

	for key, val := range raw {
		str, err := scalarString(val)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		values[key] = str
	}

	return values, nil
}

// yamlScalar keeps the source text of a YAML value so
// timestamps and floats are not reformatted.
type yamlScalar struct {
	raw []byte
}

func (ys *yamlScalar) UnmarshalYAML(raw []byte) error {
	ys.raw = append([]byte(nil), raw...)

	return nil
}

func (ys *yamlScalar) text() (string, error) {
	src := strings.TrimSpace(string(ys.raw))
	if src == "" {
		return "", nil
	}

	var val interface{}
	if err := yaml.Unmarshal([]byte(src), &val); err != nil {
		return "", err
	}

	switch typedVal := val.(type) {
	case string:
		return typedVal, nil
	case nil:
		return "", nil
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return "", ErrNotScalar
	default:
		return src, nil
	}
}

// LoadFile decodes the data file at path, choosing the
// format from its extension.
func LoadFile(path string) (*Context, error) {
	const errCtx = "loading data file"

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	fi, err := os.Open(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer fi.Close() //nolint:errcheck // best-effort close

	ctx, err := Decode(fi, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return ctx, nil
}

func scalarString(val interface{}) (string, error) {
	switch typedVal := val.(type) {
	case nil:
		return "", nil
	case string:
		return typedVal, nil
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return "", ErrNotScalar
	default:
		return fmt.Sprint(typedVal), nil
	}
}
