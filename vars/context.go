package vars

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"
)

// ErrBadAssignment is returned by Assign when its argument
// is not in NAME=VALUE form.
var ErrBadAssignment = errors.New("assignment must be NAME=VALUE")

// Context maps variable names to substitution values.
// The zero value is not usable; call New.
type Context struct {
	values map[string]string
}

// New returns an empty Context.
func New() *Context {
	return &Context{values: make(map[string]string)}
}

// Insert sets key to value, replacing any earlier value.
func (c *Context) Insert(key, value string) {
	c.values[key] = value
}

// Lookup returns the value stored for key and whether it
// was present.
func (c *Context) Lookup(key string) (string, bool) {
	val, ok := c.values[key]

	return val, ok
}

// Len returns the number of keys.
func (c *Context) Len() int {
	return len(c.values)
}

// Keys returns all keys in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Merge copies every entry of other into c. Entries of
// other win over existing ones.
func (c *Context) Merge(other *Context) {
	if other == nil {
		return
	}

	for key, val := range other.values {
		c.values[key] = val
	}
}

// Expand substitutes single-brace {KEY} placeholders in s
// with values from c. Unknown placeholders are preserved
// as-is.
func (c *Context) Expand(s string) string {
	return fasttemplate.ExecuteStringStd(s, "{", "}", c.asTemplateMap())
}

// Assign parses a NAME=VALUE assignment, expands VALUE
// against stamps and stores the result under NAME. A nil
// stamps context disables expansion.
func (c *Context) Assign(assignment string, stamps *Context) error {
	const errCtx = "assigning variable"

	parts := strings.SplitN(assignment, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return fmt.Errorf(
			"%s: %w, got %q",
			errCtx, ErrBadAssignment, assignment,
		)
	}

	val := parts[1]
	if stamps != nil {
		val = stamps.Expand(val)
	}

	c.Insert(parts[0], val)

	return nil
}

func (c *Context) asTemplateMap() map[string]interface{} {
	m := make(map[string]interface{}, len(c.values))
	for key, val := range c.values {
		m[key] = val
	}

	return m
}
