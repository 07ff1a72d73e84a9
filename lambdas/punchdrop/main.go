package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shiftbook.com.au/shiftbook/infrastructure/devops"
	"shiftbook.com.au/shiftbook/infrastructure/filesystem"
	"shiftbook.com.au/shiftbook/punch/core"
	"shiftbook.com.au/shiftbook/punch/export"
	"shiftbook.com.au/shiftbook/punch/ingest"
	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/store"
)

const shiftsSuffix = ".shifts.xlsx"

func processObject(ctx context.Context, db *gorm.DB, bucket, key string) error {
	var buf bytes.Buffer
	if err := filesystem.ReadFile(bucket, key, ctx, &buf); err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	records, err := ingest.File(key, &buf)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", key, err)
	}
	fmt.Printf("[INFO] %s: %d punches extracted\n", key, len(records))

	batchID, err := store.SavePunchBatch(db, records)
	if err != nil {
		return err
	}

	shifts := core.Reconcile(records)
	if err := store.SaveShiftRecords(db, batchID, shifts); err != nil {
		if markErr := store.MarkBatch(db, batchID, model.StatusError); markErr != nil {
			fmt.Printf("[ERROR] failed to mark batch %s: %v\n", batchID, markErr)
		}
		return err
	}
	if err := store.MarkBatch(db, batchID, model.StatusProcessed); err != nil {
		fmt.Printf("[ERROR] failed to mark batch %s: %v\n", batchID, err)
	}

	var out bytes.Buffer
	if err := export.Write(shifts, &out); err != nil {
		return fmt.Errorf("export %s: %w", key, err)
	}
	if err := filesystem.WriteFile(bucket, key+shiftsSuffix, ctx, out.Bytes()); err != nil {
		return err
	}

	fmt.Printf("[INFO] %s: batch %s, %d shift rows written\n", key, batchID, len(shifts))
	return nil
}

// HandleRequest reconciles every punch document dropped into the bucket and
// writes the shift workbook next to it. One bad object does not stop the
// rest of the event.
func HandleRequest(ctx context.Context, event events.S3Event) error {
	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	hasError := false
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key

		// our own output also lands in the bucket
		if strings.HasSuffix(key, shiftsSuffix) {
			continue
		}

		if err := processObject(ctx, db, bucket, key); err != nil {
			fmt.Printf("[ERROR] %s/%s: %v\n", bucket, key, err)
			hasError = true
		}
	}

	if hasError {
		return fmt.Errorf("one or more objects failed")
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
