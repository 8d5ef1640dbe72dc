package models

import (
	"fmt"
	"strings"
	"time"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDueDate accepts RFC 3339 timestamps, datetime-local values and plain
// calendar dates. Values without a zone are read as UTC. The result is
// truncated to milliseconds, the precision of a BSON date.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func dueDateCastMessage(value string) string {
	return fmt.Sprintf("Cast to date failed for value %q at path \"dueDate\"", value)
}
