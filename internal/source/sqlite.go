package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/mattn/go-sqlite3"
)

const memoryDSN = ":memory:"

// SQLiteSource runs metric queries against a SQLite database.
type SQLiteSource struct {
	db     *sql.DB
	path   string
	policy common.RetryOptions
}

// Open opens the database at path. ":memory:" opens a private in-memory database.
func Open(path string) (*SQLiteSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrMissingConfig)
	}

	if path != memoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases alive between queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteSource{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Query runs a read query and returns its rows keyed by column name.
// Busy and locked databases are retried.
func (s *SQLiteSource) Query(ctx context.Context, query string, args ...any) ([]model.Row, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", common.ErrQueryFailed)
	}

	var result []model.Row
	err := common.WithRetry(ctx, func() error {
		rows, err := s.query(ctx, query, args...)
		if err != nil {
			return err
		}
		result = rows
		return nil
	}, s.policy)
	if err != nil {
		return nil, err
	}

	slog.Debug("Executed metric query", "db", s.path, "rows", len(result))
	return result, nil
}

func (s *SQLiteSource) query(ctx context.Context, query string, args ...any) ([]model.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
	}

	var result []model.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row: %w", common.ErrQueryFailed, err)
		}

		row := make(model.Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return result, nil
}

// Resolve fills metric.Data from metric.SQL unless the metric carries inline rows.
func (s *SQLiteSource) Resolve(ctx context.Context, metric *model.Metric) error {
	if metric.HasData() {
		return nil
	}
	if strings.TrimSpace(metric.SQL) == "" {
		return fmt.Errorf("metric %q has neither data nor sql: %w", metric.Name, common.ErrMissingConfig)
	}

	rows, err := s.Query(ctx, metric.SQL)
	if err != nil {
		return fmt.Errorf("metric %q: %w", metric.Name, err)
	}

	metric.Data = rows
	return nil
}

func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
		return fmt.Errorf("%w: %w", common.ErrDatabaseLocked, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
}
