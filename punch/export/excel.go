package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"shiftbook.com.au/shiftbook/punch/model"
)

// Header is the fixed column order of the exported spreadsheet.
var Header = []string{"Date", "User ID", "Name", "Punch Time", "I/O Type", "Shift Start", "Shift End"}

// Workbook lays the shift records out on a single sheet, one row per record,
// in Header order. Dates and times go out as their printed string forms.
func Workbook(records []model.ShiftRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		row := []interface{}{rec.Date, rec.UserID, rec.Name, rec.PunchTime, rec.IOType, rec.ShiftStart, rec.ShiftEnd}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// Write streams the workbook for the given records to w.
func Write(records []model.ShiftRecord, w io.Writer) error {
	f, err := Workbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
