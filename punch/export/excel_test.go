package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"shiftbook.com.au/shiftbook/punch/model"
)

func TestWrite(t *testing.T) {
	records := []model.ShiftRecord{
		{
			Date:       "25/12/2024",
			UserID:     "EMP001",
			Name:       "John Smith",
			PunchTime:  "18:00:00",
			IOType:     "IN",
			ShiftStart: "25/12/2024",
			ShiftEnd:   "26/12/2024",
		},
		{
			Date:       "26/12/2024",
			UserID:     "EMP001",
			Name:       "John Smith",
			PunchTime:  "17:30:00",
			IOType:     "OUT",
			ShiftStart: "25/12/2024",
			ShiftEnd:   "26/12/2024",
		},
	}

	var buf bytes.Buffer
	err := Write(records, &buf)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"25/12/2024", "EMP001", "John Smith", "18:00:00", "IN", "25/12/2024", "26/12/2024"}, rows[1])
	assert.Equal(t, []string{"26/12/2024", "EMP001", "John Smith", "17:30:00", "OUT", "25/12/2024", "26/12/2024"}, rows[2])
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Write(nil, &buf)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
