package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads all rows. Punch exports from clock vendors are frequently
// ragged, so rows are not required to share a field count.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
