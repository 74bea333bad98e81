package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joss/owfree/internal/allowlist"
)

func TestReportNoChanges(t *testing.T) {
	r := New(false, false)

	got := r.Report(Summary{Total: 120, Free: 30, Paid: 90})

	want := "OpenRouter models: 120 | free: 30 | paid: 90\n" +
		"No changes; allow-list already current.\n"
	assert.Equal(t, want, got)
}

func TestReportDryRun(t *testing.T) {
	r := New(false, false)

	got := r.Report(Summary{
		Total: 3, Free: 2, Paid: 1,
		Changes: allowlist.ChangeSet{
			Added:     []string{"llama-3:free"},
			Removed:   []string{"old-model:free"},
			Unchanged: 1,
		},
	})

	want := "OpenRouter models: 3 | free: 2 | paid: 1\n" +
		"Added (1):\n" +
		"Removed (1):\n" +
		"Unchanged: 1\n" +
		"\n(dry-run; pass --apply to write)\n"
	assert.Equal(t, want, got)
}

func TestReportVerboseListsIDs(t *testing.T) {
	r := New(false, true)

	got := r.Report(Summary{
		Total: 3, Free: 2, Paid: 1,
		Changes: allowlist.ChangeSet{
			Added:   []string{"llama-3:free", "mixtral:free"},
			Removed: []string{"old-model:free"},
		},
		Applied: true,
	})

	want := "OpenRouter models: 3 | free: 2 | paid: 1\n" +
		"Added (2):\n" +
		"  + llama-3:free\n" +
		"  + mixtral:free\n" +
		"Removed (1):\n" +
		"  - old-model:free\n" +
		"Unchanged: 0\n" +
		"Allow-list updated (2 IDs).\n"
	assert.Equal(t, want, got)
}

func TestReportStable(t *testing.T) {
	r := New(false, true)
	s := Summary{
		Total: 10, Free: 4, Paid: 6,
		Changes: allowlist.ChangeSet{Added: []string{"a:free"}, Unchanged: 3},
	}

	assert.Equal(t, r.Report(s), r.Report(s))
}

func TestReportSnapshotLine(t *testing.T) {
	r := New(false, false)

	got := r.Report(Summary{
		Total: 1, Free: 1,
		Changes:      allowlist.ChangeSet{Added: []string{"a:free"}},
		Applied:      true,
		SnapshotPath: "/backups/webui-20260824-120000.db",
	})

	assert.Contains(t, got, "Snapshot: /backups/webui-20260824-120000.db\n")
	assert.Contains(t, got, "Allow-list updated (1 IDs).\n")
}

func TestAllowList(t *testing.T) {
	r := New(false, true)

	got := r.AllowList([]string{"a:free", "b:free"}, "openai.api_configs[0].model_ids")

	want := "openai.api_configs[0].model_ids: 2 IDs\n" +
		"  a:free\n" +
		"  b:free\n"
	assert.Equal(t, want, got)
}
