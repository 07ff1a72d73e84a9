package core

import (
	"sort"
	"time"

	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/utils"
)

// Shift boundary thresholds, as seconds since midnight. A punch at or after
// eveningStart continues (or opens) an evening shift; nightEnd is the latest
// wall-clock time still counted as the previous night's shift.
var (
	eveningStart = mustClock("17:00:00")
	nightEnd     = mustClock("02:15:00")
)

func mustClock(s string) int {
	secs, err := utils.ClockSeconds(s)
	if err != nil {
		panic(err)
	}
	return secs
}

// Reconcile converts the canonical punch table into shift-grouped records.
// Rows whose date+time do not combine into a valid timestamp are dropped.
// Each user is processed independently over its chronologically sorted
// punches; users are emitted in sorted-id order, which is a presentation
// choice only.
func Reconcile(records []model.PunchRecord) []model.ShiftRecord {
	valid := make([]model.PunchRecord, 0, len(records))
	for _, r := range records {
		dt, err := utils.CombinePunchDateTime(r.Date, r.PunchTime)
		if err != nil {
			continue
		}
		r.DateTime = dt
		valid = append(valid, r)
	}

	byUser := utils.GroupBy(valid, func(r model.PunchRecord) string { return r.UserID })

	userIDs := make([]string, 0, len(byUser))
	for id := range byUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	var out []model.ShiftRecord
	for _, id := range userIDs {
		out = append(out, reconcileUser(byUser[id])...)
	}
	return out
}

// reconcileUser folds one user's punches into shift groups then resolves
// shift dates per group.
func reconcileUser(records []model.PunchRecord) []model.ShiftRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateTime.Before(records[j].DateTime)
	})

	var shifts [][]model.PunchRecord
	var current []model.PunchRecord
	var previousLogout *time.Time

	for _, r := range records {
		tod := utils.SecondsOfDay(r.DateTime)
		date := utils.DateOf(r.DateTime)

		if tod >= eveningStart {
			if previousLogout != nil && date.After(*previousLogout) {
				// Calendar gap since the last logout: pull the user's earliest
				// record of this date in as the resumption of activity.
				if bridge := earliestOnDate(records, date); bridge != nil {
					current = append(current, *bridge)
				}
				previousLogout = nil
			}

			if tod <= nightEnd {
				// TODO: unreachable, since nightEnd < eveningStart and the
				// branch above requires tod >= eveningStart. Confirm the
				// intended overnight-continuation window with product before
				// changing shift-boundary behaviour.
				date = date.AddDate(0, 0, 1)
			}
			r.Date = utils.FormatPunchDate(date)
			current = append(current, r)
		} else {
			if len(current) > 0 {
				shifts = append(shifts, current)
			}
			current = []model.PunchRecord{r}
		}

		if r.IOType == model.IOTypeOut {
			d := utils.DateOf(r.DateTime)
			previousLogout = &d
		}
	}

	if len(current) > 0 {
		shifts = append(shifts, current)
	}

	var out []model.ShiftRecord
	for _, shift := range shifts {
		out = append(out, resolveShift(shift)...)
	}
	return out
}

func earliestOnDate(records []model.PunchRecord, date time.Time) *model.PunchRecord {
	return utils.Find(records, func(r model.PunchRecord) bool {
		return utils.DateOf(r.DateTime).Equal(date)
	})
}

// resolveShift assigns the group's shift start/end dates and the logical
// date of each punch. The end date moves forward whenever an OUT is followed
// by an IN on a later calendar date within the same group.
func resolveShift(shift []model.PunchRecord) []model.ShiftRecord {
	start := utils.DateOf(shift[0].DateTime)
	end := utils.DateOf(shift[len(shift)-1].DateTime)

	for i := 1; i < len(shift); i++ {
		prev, cur := shift[i-1], shift[i]
		if prev.IOType == model.IOTypeOut && cur.IOType == model.IOTypeIn &&
			!utils.DateOf(prev.DateTime).Equal(utils.DateOf(cur.DateTime)) {
			end = utils.DateOf(cur.DateTime)
		}
	}

	out := make([]model.ShiftRecord, 0, len(shift))
	for _, r := range shift {
		date := start
		if r.Date != shift[0].Date {
			date = end
		}
		out = append(out, model.ShiftRecord{
			BatchID:    r.BatchID,
			Date:       utils.FormatPunchDate(date),
			UserID:     r.UserID,
			Name:       r.Name,
			PunchTime:  r.PunchTime,
			IOType:     r.IOType,
			ShiftStart: utils.FormatPunchDate(start),
			ShiftEnd:   utils.FormatPunchDate(end),
		})
	}
	return out
}
