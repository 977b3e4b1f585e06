package database

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/retry"
	"context"
	"fmt"
	log "log/slog"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NormalizeDSN 强制 parseTime=true 与 UTC 时区，posted_at 与 date 列按 UTC 解析
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := drv.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// NewGormDB 初始化并返回 *gorm.DB 实例，连接失败按退避策略重试
func NewGormDB(ctx context.Context, cfg *config.DBConfig) (*gorm.DB, error) {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	policy := retry.DefaultConfig()
	if cfg.ConnectRetry > 0 {
		policy.MaxRetries = uint64(cfg.ConnectRetry)
	}

	var db *gorm.DB
	err = retry.Do(ctx, "mysql connect", policy, func() error {
		var openErr error
		db, openErr = open(dsn, cfg)
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

func open(dsn string, cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
