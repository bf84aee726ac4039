package sqldb

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"notes-backend/internal/config"
	"notes-backend/internal/services/notes"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	db *gorm.DB
	mu sync.Mutex
)

// Init opens the relational database (first call wins, thread-safe),
// configures the connection pool and migrates the notes schema.
func Init(ctx context.Context, cfg config.Config, log *slog.Logger) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db, nil
	}

	conn, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Error("failed to open database", "err", err)
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// SQLite supports a single writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.Error("failed to ping database", "err", err)
		return nil, err
	}

	if err := conn.WithContext(ctx).AutoMigrate(&notes.Note{}); err != nil {
		log.Error("failed to migrate schema", "err", err)
		return nil, err
	}

	db = conn
	log.Info("connected to database", "dsn", cfg.DatabaseURL)

	return db, nil
}

// DB returns the singleton database handle.
func DB() *gorm.DB {
	mu.Lock()
	defer mu.Unlock()
	return db
}

// Ping checks database connectivity, for health probes.
func Ping(ctx context.Context) error {
	mu.Lock()
	conn := db
	mu.Unlock()

	if conn == nil {
		return errors.New("database not initialized")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Shutdown closes the database connection.
// Safe to call more than once.
func Shutdown(_ context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
