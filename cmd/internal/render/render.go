// Package render writes the nested maps produced by the cfn package in
// a stable, human-readable form. Map keys are sorted so output is
// deterministic and diffable.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

const indentStep = "  "

// Map writes m to w, one "key: value" line per entry, nesting maps and
// sequences with two-space indentation.
func Map(w io.Writer, m map[string]any) error {
	return writeMap(w, m, "")
}

func writeMap(w io.Writer, m map[string]any, indent string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeEntry(w, k, m[k], indent); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, key string, v any, indent string) error {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 0 {
			_, err := fmt.Fprintf(w, "%s%s: {}\n", indent, key)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
			return err
		}
		return writeMap(w, val, indent+indentStep)
	case []map[string]any:
		if len(val) == 0 {
			_, err := fmt.Fprintf(w, "%s%s: []\n", indent, key)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
			return err
		}
		for _, item := range val {
			if _, err := fmt.Fprintf(w, "%s-\n", indent+indentStep); err != nil {
				return err
			}
			if err := writeMap(w, item, indent+indentStep+indentStep); err != nil {
				return err
			}
		}
		return nil
	case []string:
		if len(val) == 0 {
			_, err := fmt.Fprintf(w, "%s%s: []\n", indent, key)
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key, strings.Join(val, ", "))
		return err
	default:
		_, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key, scalar(v))
		return err
	}
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
