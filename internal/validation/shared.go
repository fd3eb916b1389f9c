package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error collects per-field validation failures so a handler can return
// them all in one response. Fields maps the JSON field name to a
// human-readable message.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages into a single string, sorted by field
// name so the output is stable.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
