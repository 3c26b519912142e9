package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// both supported drivers take '?' placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ErrNotConfigured is returned by every read path when no database connection
// was configured. Callers use it to switch to the demo dataset.
var ErrNotConfigured = errors.New("DB_NOT_CONFIGURED")

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// DefaultMaxOpenConns bounds the shared connection pool.
const DefaultMaxOpenConns = 10

// Querier is the narrow part of *sql.DB the archive queries need.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Settings describes the connection pool opened at startup.
type Settings struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

// MySQLDSN builds a go-sql-driver DSN for the archive database.
func MySQLDSN(host, port, user, password, dbName string) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port)
	cfg.User = user
	cfg.Passwd = password
	cfg.DBName = dbName
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// InitDB opens the process-wide pool. The pool is created even when the first
// ping fails so a database that comes up later is picked up without a restart.
func InitDB(settings Settings, logger *zap.Logger) (*sql.DB, error) {
	if settings.Driver != DriverMySQL && settings.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", settings.Driver)
	}
	db, err := sql.Open(settings.Driver, settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := settings.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Warn("database ping failed, continuing with lazy connections",
			zap.String("driver", settings.Driver), zap.Error(err))
	} else {
		logger.Info("database initialized", zap.String("driver", settings.Driver), zap.Int("max_open_conns", maxOpen))
	}
	return db, nil
}
