package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/tab"
)

// run executes reportctl against a seeded in-memory store.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(Options{Output: &out, Logger: zerolog.Nop()})
	c.SetArgs(append([]string{"--store", "memory", "--seed", "42"}, args...))
	err := c.Execute(context.Background())
	return out.String(), err
}

// ---------------------------------------------------------------------------
// categories / stats
// ---------------------------------------------------------------------------

func TestCategories_ListsEveryTab(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)

	for _, c := range domain.Categories {
		assert.Contains(t, out, string(c))
	}
	assert.Contains(t, out, "Timesheet Reports")
}

func TestStats_UserCounters(t *testing.T) {
	out, err := run(t, "stats", "users")
	require.NoError(t, err)

	assert.Regexp(t, `total\s+10\n`, out)
	assert.Regexp(t, `active\s+9\n`, out)
	assert.Regexp(t, `inactive\s+1\n`, out)
	assert.Regexp(t, `completed\s+-\n`, out)
}

func TestStats_UnknownCategory(t *testing.T) {
	_, err := run(t, "stats", "invoices")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

// ---------------------------------------------------------------------------
// view
// ---------------------------------------------------------------------------

func TestView_Search(t *testing.T) {
	out, err := run(t, "view", "user", "--search", "OLIVIA")
	require.NoError(t, err)

	assert.Contains(t, out, "User Reports")
	assert.Contains(t, out, "Olivia Bennett")
	assert.NotContains(t, out, "Liam Carter")
	assert.Contains(t, out, "page 1 of 1 (1 records)")
}

func TestView_Filter(t *testing.T) {
	out, err := run(t, "view", "user", "-f", "status=Inactive")
	require.NoError(t, err)

	assert.Contains(t, out, "Lucas Moreau")
	assert.Contains(t, out, "status: Inactive")
	assert.Contains(t, out, "(1 records)")
}

func TestView_EmptyState(t *testing.T) {
	out, err := run(t, "view", "user", "--search", "nobody-by-this-name")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found")
}

func TestView_PagesAreOneBased(t *testing.T) {
	out, err := run(t, "view", "user", "--page", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "page 1 of 1 (10 records)")
	assert.Contains(t, out, "[1]")
}

func TestView_SortMarksHeader(t *testing.T) {
	out, err := run(t, "view", "timesheet", "--range", "yearToDate", "--sort", "totalHours", "--desc")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL HOURS v")
}

func TestView_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown category", []string{"view", "invoice"}, domain.ErrUnknownCategory},
		{"bad page size", []string{"view", "user", "--page-size", "15"}, tab.ErrInvalidPageSize},
		{"unknown filter field", []string{"view", "user", "-f", "salary=1"}, domain.ErrInvalidFilterField},
		{"unsortable column", []string{"view", "user", "--sort", "name"}, domain.ErrInvalidSort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestView_UnknownRangeShowsEverything(t *testing.T) {
	stats, err := run(t, "stats", "task")
	require.NoError(t, err)
	m := regexp.MustCompile(`total\s+(\d+)`).FindStringSubmatch(stats)
	require.Len(t, m, 2)

	out, err := run(t, "view", "task", "--range", "forever")
	require.NoError(t, err)
	assert.Contains(t, out, "("+m[1]+" records)")
}

func TestView_MalformedFilter(t *testing.T) {
	_, err := run(t, "view", "user", "-f", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want field=value")
}

// ---------------------------------------------------------------------------
// export / download / schedule
// ---------------------------------------------------------------------------

func TestExport_PrintsLink(t *testing.T) {
	out, err := run(t, "--export-base-url", "https://files.test/r/", "export", "project", "--format", "xlsx")
	require.NoError(t, err)

	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "https://files.test/r/project-"), link)
	assert.True(t, strings.HasSuffix(link, ".xlsx"), link)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := run(t, "export", "project", "--format", "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestDownload_WritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	out, err := run(t, "download", "user", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "Code,Name,Email"), lines[0])
}

func TestDownload_RejectsPDF(t *testing.T) {
	_, err := run(t, "download", "user", "--format", "pdf", "--out", filepath.Join(t.TempDir(), "x.pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSchedule(t *testing.T) {
	out, err := run(t, "schedule", "task", "--cadence", "Daily", "--to", "ops@worklog.io,lead@worklog.io")
	require.NoError(t, err)
	assert.Contains(t, out, "next run:")
	assert.Contains(t, out, "2 recipient(s)")
}

func TestSchedule_RequiresRecipients(t *testing.T) {
	_, err := run(t, "schedule", "task")
	assert.ErrorIs(t, err, domain.ErrNoRecipients)
}

// ---------------------------------------------------------------------------
// import
// ---------------------------------------------------------------------------

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImport_SavesRecords(t *testing.T) {
	path := writeJSON(t, `[{"id":"TSK-1","name":"Plan"},{"id":"TSK-2","name":"Build"}]`)

	out, err := run(t, "import", "task", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 task records")
}

func TestImport_RejectsDuplicateIDs(t *testing.T) {
	path := writeJSON(t, `[{"id":"TSK-1"},{"id":"TSK-1"}]`)

	_, err := run(t, "import", "task", path)
	assert.ErrorIs(t, err, domain.ErrDuplicateRecord)
}

func TestImport_RejectsNonArray(t *testing.T) {
	path := writeJSON(t, `{"id":"TSK-1"}`)

	_, err := run(t, "import", "task", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// ---------------------------------------------------------------------------
// config
// ---------------------------------------------------------------------------

func TestConfig_RedisPassword(t *testing.T) {
	t.Setenv("REPORTCTL_REDIS_PASSWORD", "from-env")
	c := New(Options{Output: &bytes.Buffer{}, Logger: zerolog.Nop()})
	assert.Equal(t, "from-env", c.config().Redis.Password)

	require.NoError(t, c.rootCmd.PersistentFlags().Set("redis-password", "from-flag"))
	assert.Equal(t, "from-flag", c.config().Redis.Password)
}
