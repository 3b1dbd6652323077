package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
)

var (
	columns = []listview.Column{
		{Header: "Task", Field: "name"},
		{Header: "Assignee", Field: "assignee"},
		{Header: "Hours", Field: "hoursLogged", Render: func(r domain.Record) string { return "rendered" }},
	}
	records = []domain.Record{
		domain.TaskReport{ID: "TSK-1", Name: "Plan, then build", Assignee: domain.Person{Name: "Liam Carter"}, HoursLogged: 12.5},
		domain.TaskReport{ID: "TSK-2", Name: "Review", Assignee: domain.Person{Name: "Sofia Alvarez"}, HoursLogged: 3},
	}
)

func TestCSV_Render(t *testing.T) {
	data, err := CSV{}.Render("Tasks", columns, records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Task", "Assignee", "Hours"},
		{"Plan, then build", "Liam Carter", "rendered"},
		{"Review", "Sofia Alvarez", "rendered"},
	}, rows)
	assert.Equal(t, "text/csv", CSV{}.ContentType())
}

func TestCSV_RenderHeaderOnly(t *testing.T) {
	data, err := CSV{}.Render("", columns, nil)
	require.NoError(t, err)
	assert.Equal(t, "Task,Assignee,Hours\n", string(data))
}

func TestSpreadsheet_Render(t *testing.T) {
	data, err := Spreadsheet{}.Render("Task Reports", columns, records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Task Reports"}, f.GetSheetList())

	rows, err := f.GetRows("Task Reports")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Task", "Assignee", "Hours"}, rows[0])
	assert.Equal(t, []string{"Plan, then build", "Liam Carter", "12.5"}, rows[1])
	assert.Equal(t, []string{"Review", "Sofia Alvarez", "3"}, rows[2])
}

func TestSpreadsheet_DefaultSheetName(t *testing.T) {
	data, err := Spreadsheet{}.Render("", columns, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Report"}, f.GetSheetList())
}
