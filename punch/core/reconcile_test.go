package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"shiftbook.com.au/shiftbook/punch/model"
)

func punch(date, userID, punchTime, ioType string) model.PunchRecord {
	return model.PunchRecord{Date: date, UserID: userID, Name: "Test Worker", PunchTime: punchTime, IOType: ioType}
}

func TestReconcileEmptyInput(t *testing.T) {
	assert.Empty(t, Reconcile(nil))
	assert.Empty(t, Reconcile([]model.PunchRecord{}))
}

func TestReconcileDropsUnparseableRows(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "08:00:00", "IN"),
		punch("not a date", "EMP001", "09:00:00", "IN"),
		punch("25/12/2024", "EMP001", "nope", "OUT"),
		punch("", "EMP001", "", ""),
	}

	out := Reconcile(records)
	assert.Len(t, out, 1)
	assert.Equal(t, "08:00:00", out[0].PunchTime)
}

func TestReconcileSameDayShift(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "08:00:00", "IN"),
		punch("25/12/2024", "EMP001", "12:00:00", "OUT"),
		punch("25/12/2024", "EMP001", "12:30:00", "IN"),
		punch("25/12/2024", "EMP001", "16:30:00", "OUT"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 4)
	for _, sr := range out {
		assert.Equal(t, "25/12/2024", sr.Date)
		assert.Equal(t, "25/12/2024", sr.ShiftStart)
		assert.Equal(t, "25/12/2024", sr.ShiftEnd)
	}
}

// A daytime punch always closes the running shift, so each daytime punch
// opens a group of its own.
func TestReconcileDaytimePunchClosesShift(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "18:00:00", "IN"),
		punch("25/12/2024", "EMP001", "23:30:00", "OUT"),
		punch("26/12/2024", "EMP001", "00:30:00", "IN"),
		punch("26/12/2024", "EMP001", "08:00:00", "OUT"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 4)

	// evening pair stays one shift anchored on the 25th
	assert.Equal(t, "25/12/2024", out[0].ShiftStart)
	assert.Equal(t, "25/12/2024", out[0].ShiftEnd)
	assert.Equal(t, "25/12/2024", out[1].ShiftEnd)

	// the post-midnight punches each open their own group on the 26th
	assert.Equal(t, "26/12/2024", out[2].ShiftStart)
	assert.Equal(t, "26/12/2024", out[2].ShiftEnd)
	assert.Equal(t, "26/12/2024", out[3].ShiftStart)
}

// An evening punch whose record is the earliest of its date bridges with
// itself after a logout gap, so the punch appears twice in the group.
func TestReconcileBridgesAfterLogoutGap(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "18:00:00", "IN"),
		punch("25/12/2024", "EMP001", "23:30:00", "OUT"),
		punch("26/12/2024", "EMP001", "18:00:00", "IN"),
		punch("26/12/2024", "EMP001", "23:30:00", "OUT"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 5)

	for _, sr := range out {
		assert.Equal(t, "25/12/2024", sr.ShiftStart)
		assert.Equal(t, "26/12/2024", sr.ShiftEnd)
	}
	assert.Equal(t, "25/12/2024", out[0].Date)
	assert.Equal(t, "25/12/2024", out[1].Date)
	assert.Equal(t, "26/12/2024", out[2].Date)
	assert.Equal(t, "26/12/2024", out[3].Date)
	assert.Equal(t, "26/12/2024", out[4].Date)
}

// With a skipped calendar day, the bridge is the earliest record on the
// evening punch's own date.
func TestReconcileBridgeUsesEarliestRecordOfDate(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "18:00:00", "OUT"),
		punch("27/12/2024", "EMP001", "09:00:00", "IN"),
		punch("27/12/2024", "EMP001", "19:00:00", "IN"),
	}

	out := Reconcile(records)
	// group [OUT], then group [09:00 IN, 09:00 IN bridge, 19:00 IN]
	assert.Len(t, out, 4)
	assert.Equal(t, "25/12/2024", out[0].ShiftStart)

	morning := 0
	for _, sr := range out[1:] {
		assert.Equal(t, "27/12/2024", sr.ShiftStart)
		assert.Equal(t, "27/12/2024", sr.ShiftEnd)
		if sr.PunchTime == "09:00:00" {
			morning++
		}
	}
	assert.Equal(t, 2, morning)
}

func TestReconcileOvernightGroupDates(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "18:00:00", "IN"),
		punch("26/12/2024", "EMP001", "17:30:00", "OUT"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 2)
	assert.Equal(t, "25/12/2024", out[0].Date)
	assert.Equal(t, "26/12/2024", out[1].Date)
	for _, sr := range out {
		assert.Equal(t, "25/12/2024", sr.ShiftStart)
		assert.Equal(t, "26/12/2024", sr.ShiftEnd)
	}
}

// Re-running resolution over already-resolved records must not move the
// shift dates.
func TestReconcileDateResolutionIdempotent(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "18:00:00", "IN"),
		punch("26/12/2024", "EMP001", "17:30:00", "OUT"),
		punch("28/12/2024", "EMP001", "09:00:00", "IN"),
		punch("28/12/2024", "EMP001", "16:00:00", "OUT"),
	}

	first := Reconcile(records)

	again := make([]model.PunchRecord, 0, len(first))
	for _, sr := range first {
		again = append(again, punch(sr.Date, sr.UserID, sr.PunchTime, sr.IOType))
	}

	second := Reconcile(again)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ShiftStart, second[i].ShiftStart)
		assert.Equal(t, first[i].ShiftEnd, second[i].ShiftEnd)
		assert.Equal(t, first[i].Date, second[i].Date)
	}
}

func TestReconcileUsersAreIndependent(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "ZED99", "08:00:00", "IN"),
		punch("25/12/2024", "ABC01", "18:00:00", "IN"),
		punch("25/12/2024", "ZED99", "16:00:00", "OUT"),
		punch("25/12/2024", "ABC01", "23:00:00", "OUT"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 4)

	// users emitted in sorted order, punches in chronological order within
	assert.Equal(t, "ABC01", out[0].UserID)
	assert.Equal(t, "18:00:00", out[0].PunchTime)
	assert.Equal(t, "23:00:00", out[1].PunchTime)
	assert.Equal(t, "ZED99", out[2].UserID)
	assert.Equal(t, "08:00:00", out[2].PunchTime)
	assert.Equal(t, "16:00:00", out[3].PunchTime)
}

func TestReconcileKeepsTrailingShift(t *testing.T) {
	records := []model.PunchRecord{
		punch("25/12/2024", "EMP001", "17:00:00", "IN"),
	}

	out := Reconcile(records)
	assert.Len(t, out, 1)
	assert.Equal(t, "25/12/2024", out[0].ShiftStart)
	assert.Equal(t, "25/12/2024", out[0].ShiftEnd)
}
