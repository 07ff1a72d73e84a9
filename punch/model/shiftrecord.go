package model

import "time"

// ShiftRecord is a punch with its enclosing shift resolved. Date is the
// logical shift date the punch belongs to, which can differ from the printed
// date for punches past midnight. ShiftStart/ShiftEnd are DD/MM/YYYY.
type ShiftRecord struct {
	ID      int32  `json:"id" gorm:"primaryKey;autoIncrement"`
	BatchID string `json:"batch_id"`

	Date       string `json:"date"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	PunchTime  string `json:"punch_time"`
	IOType     string `json:"io_type"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`

	// PunchedAt is Date+PunchTime as a sortable timestamp, set when the row
	// is stored. Search filters on it; the printed columns stay as-is.
	PunchedAt time.Time `json:"punched_at" gorm:"type:datetime"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
}

func (ShiftRecord) TableName() string {
	return "shift_records"
}
