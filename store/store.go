package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/utils"
)

// SavePunchBatch stores freshly ingested punches under a new batch id and
// returns it. Rows go in as pending; reconciliation flips them later.
func SavePunchBatch(db *gorm.DB, records []model.PunchRecord) (string, error) {
	batchID := uuid.NewString()

	rows := make([]model.PunchRecord, len(records))
	for i, r := range records {
		r.ID = uuid.NewString()
		r.BatchID = batchID
		r.Seq = i
		r.ProcessStatus = model.StatusPending
		rows[i] = r
	}

	if len(rows) > 0 {
		if err := db.CreateInBatches(&rows, 500).Error; err != nil {
			return "", fmt.Errorf("failed to save punch batch: %w", err)
		}
	}
	return batchID, nil
}

// BatchPunches loads every punch row of a batch in insertion order.
func BatchPunches(db *gorm.DB, batchID string) ([]model.PunchRecord, error) {
	var records []model.PunchRecord
	if err := db.Where("batch_id = ?", batchID).Order("seq").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch punches for batch %s: %w", batchID, err)
	}
	return records, nil
}

// SaveShiftRecords replaces a batch's reconciled rows. Reprocessing a batch
// must not accumulate duplicates, so existing rows go first.
func SaveShiftRecords(db *gorm.DB, batchID string, records []model.ShiftRecord) error {
	if err := db.Where("batch_id = ?", batchID).Delete(&model.ShiftRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear shift records for batch %s: %w", batchID, err)
	}

	rows := make([]model.ShiftRecord, len(records))
	for i, r := range records {
		r.BatchID = batchID
		if at, err := utils.CombinePunchDateTime(r.Date, r.PunchTime); err == nil {
			r.PunchedAt = at
		}
		rows[i] = r
	}

	if len(rows) > 0 {
		if err := db.CreateInBatches(&rows, 500).Error; err != nil {
			return fmt.Errorf("failed to save shift records for batch %s: %w", batchID, err)
		}
	}
	return nil
}

// MarkBatch sets the process status of every punch row in a batch.
func MarkBatch(db *gorm.DB, batchID string, status string) error {
	if err := db.Model(&model.PunchRecord{}).Where("batch_id = ?", batchID).
		Update("process_status", status).Error; err != nil {
		return fmt.Errorf("failed to mark batch %s %s: %w", batchID, status, err)
	}
	return nil
}

type SearchOptions struct {
	BatchID string
	UserIDs []string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// SearchShifts filters reconciled rows by batch, users and punched-at range.
func SearchShifts(db *gorm.DB, opts SearchOptions) ([]model.ShiftRecord, int64, error) {
	q := db.Model(&model.ShiftRecord{})
	if opts.BatchID != "" {
		q = q.Where("batch_id = ?", opts.BatchID)
	}
	if len(opts.UserIDs) > 0 {
		q = q.Where("user_id IN ?", opts.UserIDs)
	}
	if opts.From != nil {
		q = q.Where("punched_at >= ?", *opts.From)
	}
	if opts.To != nil {
		q = q.Where("punched_at < ?", opts.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shift records: %w", err)
	}

	q = q.Order("user_id, punched_at, id")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit).Offset(opts.Offset)
	}

	var records []model.ShiftRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search shift records: %w", err)
	}
	return records, total, nil
}
