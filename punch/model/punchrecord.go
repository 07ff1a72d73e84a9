package model

import "time"

const (
	IOTypeIn  = "IN"
	IOTypeOut = "OUT"
	// A punch line with no IN/OUT token keeps an empty IOType.
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusError     = "error"
)

// PunchRecord is one clock event as printed in the source document. Date and
// PunchTime keep their printed forms (DD/MM/YYYY, HH:MM:SS); DateTime is the
// derived sort key and is never persisted.
type PunchRecord struct {
	ID      string `json:"id"`
	BatchID string `json:"batch_id"`
	// Seq is the record's position within its batch; reloads preserve the
	// original input order, which breaks timestamp ties downstream.
	Seq int `json:"seq"`
	Date      string `json:"date"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	PunchTime string `json:"punch_time"`
	IOType    string `json:"io_type"`

	ProcessStatus string    `json:"process_status"`
	CreatedAt     time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt     time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`

	DateTime time.Time `json:"-" gorm:"-"`
}

func (PunchRecord) TableName() string {
	return "punch_records"
}
