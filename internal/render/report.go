// Package render formats the run report for terminal output.
// Pure formatting: same summary in, same text out.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joss/owfree/internal/allowlist"
)

// Summary is everything the report needs from a finished run.
type Summary struct {
	Total   int
	Free    int
	Paid    int
	Changes allowlist.ChangeSet
	Applied bool

	// SnapshotPath is the pre-apply database copy, if one was taken.
	SnapshotPath string
}

// Renderer handles report formatting.
type Renderer struct {
	pretty  bool
	verbose bool
}

// New creates a renderer. Pretty enables color and rules; verbose lists
// individual model IDs instead of counts.
func New(pretty, verbose bool) *Renderer {
	return &Renderer{pretty: pretty, verbose: verbose}
}

// Report formats the before/after summary of one run.
func (r *Renderer) Report(s Summary) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Free-model allow-list\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	fmt.Fprintf(&sb, "OpenRouter models: %d | free: %d | paid: %d\n", s.Total, s.Free, s.Paid)

	if s.Changes.Empty() {
		sb.WriteString("No changes; allow-list already current.\n")
		return sb.String()
	}

	r.section(&sb, "Added", "+", s.Changes.Added, color.GreenString)
	r.section(&sb, "Removed", "-", s.Changes.Removed, color.RedString)
	fmt.Fprintf(&sb, "Unchanged: %d\n", s.Changes.Unchanged)

	if s.SnapshotPath != "" {
		fmt.Fprintf(&sb, "Snapshot: %s\n", s.SnapshotPath)
	}

	if s.Applied {
		n := len(s.Changes.Added) + s.Changes.Unchanged
		fmt.Fprintf(&sb, "Allow-list updated (%d IDs).\n", n)
	} else {
		sb.WriteString("\n(dry-run; pass --apply to write)\n")
	}

	return sb.String()
}

func (r *Renderer) section(sb *strings.Builder, title, mark string, ids []string, paint func(string, ...interface{}) string) {
	fmt.Fprintf(sb, "%s (%d):\n", title, len(ids))
	if !r.verbose {
		return
	}
	for _, id := range ids {
		line := fmt.Sprintf("  %s %s", mark, id)
		if r.pretty {
			line = paint("%s", line)
		}
		fmt.Fprintln(sb, line)
	}
}

// AllowList formats the currently stored allow-list (the show command).
func (r *Renderer) AllowList(ids []string, path string) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Stored allow-list\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	fmt.Fprintf(&sb, "%s: %d IDs\n", path, len(ids))
	for _, id := range ids {
		fmt.Fprintf(&sb, "  %s\n", id)
	}
	return sb.String()
}
