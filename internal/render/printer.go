// Package render provides formatted CLI output for backend responses.
// Resource payloads are backend-owned JSON, so rendering is pretty-printed
// JSON plus boxed summaries for the common read paths.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// JSON pretty-prints a raw backend payload. Invalid JSON is written verbatim
// so the caller still sees what the backend sent.
func (p *Printer) JSON(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Fprintln(p.out, string(raw))
		return
	}
	fmt.Fprintln(p.out, buf.String())
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Summary prints a boxed summary of the top-level scalar fields of a backend
// payload. Nested objects and arrays are summarized by size; scalars are
// printed as-is, keys sorted for stable output.
func (p *Printer) Summary(title string, raw json.RawMessage) {
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		p.JSON(raw)
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	shown := 0
	for _, k := range keys {
		if shown >= maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("... and %d more fields\n", len(keys)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("%-20s %s\n", k+":", summarizeValue(fields[k])))
		shown++
	}

	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// summarizeValue renders a JSON value in one line.
func summarizeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case []any:
		return fmt.Sprintf("[%d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{%d fields}", len(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}
