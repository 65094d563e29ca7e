package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSheet() Sheet {
	return Sheet{
		Title:  "Timesheet 2024-02",
		Header: []string{"Employee", "01 Thu", "Total"},
		Rows: [][]string{
			{"Alice", "7.50", "7.50"},
			{"Bob, Jr.", "", "0.00"},
		},
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleSheet())
	require.NoError(t, err)

	assert.Equal(t, "Employee,01 Thu,Total\nAlice,7.50,7.50\n\"Bob, Jr.\",,0.00\n", string(data))
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sampleSheet())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheet 2024-02")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Employee", "01 Thu", "Total"}, rows[0])
	assert.Equal(t, "Alice", rows[1][0])
	assert.Equal(t, "7.50", rows[1][1])
}

func TestRaggedSheet(t *testing.T) {
	s := sampleSheet()
	s.Rows = append(s.Rows, []string{"Carol"})

	_, err := CSV(s)
	assert.ErrorIs(t, err, ErrRaggedSheet)

	_, err = XLSX(s)
	assert.ErrorIs(t, err, ErrRaggedSheet)
}
