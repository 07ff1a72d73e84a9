package common

import (
	"encoding/json"
	"fmt"
	"time"

	"shiftbook.com.au/shiftbook/utils"
)

// DateOnly binds JSON date strings in the punch document format, DD/MM/YYYY.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	// b is a quoted string like `"25/12/2024"`
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		// handle empty date gracefully
		d.Time = time.Time{}
		return nil
	}

	t, err := utils.ParsePunchDate(s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(utils.FormatPunchDate(d.Time))
}
