package extract

import (
	"regexp"
	"strings"

	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/utils"
)

var (
	dateHeaderRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	userIDRe     = regexp.MustCompile(`\b[A-Za-z0-9]{4,}\b`)
	punchTimeRe  = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)
	ioTypeRe     = regexp.MustCompile(`\bIN\b|\bOUT\b`)
)

// State carries the governing date header between lines and across pages.
// Callers thread it through successive Lines calls in page order.
type State struct {
	CurrentDate string
}

// Lines scans raw document lines for punch events.
//
// A line starting with a DD/MM/YYYY token sets the governing date and emits
// nothing. Every other non-blank line is a punch candidate: it needs an
// alphanumeric token of length >= 4 (the user id) and an HH:MM:SS token (the
// punch time), in that order. The display name is whatever sits between the
// two, with IN/OUT tokens stripped. Lines missing either token, and punch
// lines seen before any date header, are discarded.
func Lines(lines []string, st State) ([]model.PunchRecord, State) {
	var records []model.PunchRecord

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := dateHeaderRe.FindString(line); m != "" {
			// A date-shaped token that is not a real date (e.g. 45/13/2024)
			// does not update the governing date.
			if _, err := utils.ParsePunchDate(m); err == nil {
				st.CurrentDate = m
			}
			continue
		}

		if st.CurrentDate == "" {
			continue
		}

		userLoc := userIDRe.FindStringIndex(line)
		timeLoc := punchTimeRe.FindStringIndex(line)
		if userLoc == nil || timeLoc == nil {
			continue
		}

		name := ""
		if timeLoc[0] > userLoc[1] {
			name = line[userLoc[1]:timeLoc[0]]
		}
		name = strings.TrimSpace(ioTypeRe.ReplaceAllString(name, ""))

		records = append(records, model.PunchRecord{
			Date:      st.CurrentDate,
			UserID:    line[userLoc[0]:userLoc[1]],
			Name:      name,
			PunchTime: line[timeLoc[0]:timeLoc[1]],
			IOType:    ioTypeRe.FindString(line),
		})
	}

	return records, st
}

// Text splits one page of extracted text and feeds it through Lines.
func Text(text string, st State) ([]model.PunchRecord, State) {
	return Lines(strings.Split(text, "\n"), st)
}

// Pages runs the parser over ordered page texts, carrying the date header
// from one page into the next.
func Pages(pages []string) []model.PunchRecord {
	var all []model.PunchRecord
	var st State
	for _, page := range pages {
		var recs []model.PunchRecord
		recs, st = Text(page, st)
		all = append(all, recs...)
	}
	return all
}
