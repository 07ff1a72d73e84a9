package core

import (
	"fmt"
	"regexp"
	"strings"

	"shiftbook.com.au/shiftbook/punch/model"
)

var (
	dateColRe      = regexp.MustCompile(`(?i)\bdate\b`)
	punchTimeColRe = regexp.MustCompile(`(?i)\bpunch\s*time\b`)
	ioTypeColRe    = regexp.MustCompile(`(?i)\bi\s*/\s*o\s*type\b`)
	userIDColRe    = regexp.MustCompile(`(?i)\buser\s*id\b`)
	nameColRe      = regexp.MustCompile(`(?i)\bname\b`)
)

// Columns maps a header row to the five canonical roles. A nil index means
// the role could not be resolved.
type Columns struct {
	Date      *int
	PunchTime *int
	IOType    *int
	UserID    *int
	Name      *int
}

// ResolveColumns matches each role against the header independently; the
// first column matching a role's keyword wins.
func ResolveColumns(header []string) Columns {
	find := func(re *regexp.Regexp) *int {
		for i, col := range header {
			if re.MatchString(col) {
				idx := i
				return &idx
			}
		}
		return nil
	}

	return Columns{
		Date:      find(dateColRe),
		PunchTime: find(punchTimeColRe),
		IOType:    find(ioTypeColRe),
		UserID:    find(userIDColRe),
		Name:      find(nameColRe),
	}
}

func (c Columns) Resolved() bool {
	return len(c.Missing()) == 0
}

// Missing lists the canonical role names with no matching column.
func (c Columns) Missing() []string {
	var missing []string
	if c.Date == nil {
		missing = append(missing, "Date")
	}
	if c.PunchTime == nil {
		missing = append(missing, "Punch Time")
	}
	if c.IOType == nil {
		missing = append(missing, "I/O Type")
	}
	if c.UserID == nil {
		missing = append(missing, "User ID")
	}
	if c.Name == nil {
		missing = append(missing, "Name")
	}
	return missing
}

// UnresolvedColumnsError blocks reconciliation: running the engine with an
// incomplete role mapping is undefined.
type UnresolvedColumnsError struct {
	Missing []string
}

func (e *UnresolvedColumnsError) Error() string {
	return fmt.Sprintf("unresolved columns: %s", strings.Join(e.Missing, ", "))
}

// FromRows builds the canonical punch table from a tabular source. The
// header must resolve all five roles or no records are produced.
func FromRows(header []string, rows [][]string) ([]model.PunchRecord, error) {
	cols := ResolveColumns(header)
	if !cols.Resolved() {
		return nil, &UnresolvedColumnsError{Missing: cols.Missing()}
	}

	cell := func(row []string, idx *int) string {
		if *idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[*idx])
	}

	records := make([]model.PunchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.PunchRecord{
			Date:      cell(row, cols.Date),
			UserID:    cell(row, cols.UserID),
			Name:      cell(row, cols.Name),
			PunchTime: cell(row, cols.PunchTime),
			IOType:    cell(row, cols.IOType),
		})
	}
	return records, nil
}
