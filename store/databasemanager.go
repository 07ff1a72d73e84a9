package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSchema is used when the request host does not name a tenant schema.
const DefaultSchema = "shiftbook"

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// DatabaseManager owns the global mysql pool. Individual requests get a
// gorm.DB locked to one pooled connection with the tenant schema selected.
type DatabaseManager struct {
	SqlDB    *sql.DB
	LogLevel LogLevel
}

// New creates the global pool. dsn should not include a schema, just
// host/user/pass.
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{SqlDB: sqlDB}, nil
}

// SchemaFromHost maps a request hostname to its tenant schema, e.g.
// "acme.shiftbook.com.au" -> "acme". Bare hosts fall back to DefaultSchema.
func SchemaFromHost(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 3 || parts[0] == "localhost" || parts[0] == "www" {
		return DefaultSchema
	}
	return parts[0]
}

// GetDB binds gorm to a single pooled connection with the schema selected.
// The caller owns the returned conn and must close it.
func (dm *DatabaseManager) GetDB(ctx context.Context, schema string) (*gorm.DB, *sql.Conn, error) {
	if schema == "" {
		schema = DefaultSchema
	}

	conn, err := dm.SqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conn: %w", err)
	}
	defer func() {
		if conn != nil {
			conn.Close()
		}
	}()

	if _, err := conn.ExecContext(ctx, "USE `"+schema+"`"); err != nil {
		return nil, nil, fmt.Errorf("failed to use schema %s: %w", schema, err)
	}

	dialector := mysql.New(mysql.Config{
		Conn: conn,
	})

	gormLogLevel := logger.Silent
	switch dm.LogLevel {
	case LogLevelError:
		gormLogLevel = logger.Error
	case LogLevelWarn:
		gormLogLevel = logger.Warn
	case LogLevelInfo:
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	// cancel the deferred close; caller closes
	defer func() { conn = nil }()
	return db, conn, nil
}

func (dm *DatabaseManager) Exec(ctx context.Context, schema string, fn func(db *gorm.DB) error) error {
	db, conn, err := dm.GetDB(ctx, schema)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(db)
}

func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}
