package database

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/habilitations/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Select runs a query with named parameters (":name") and returns every row
// keyed by column name.
func (db *DB) Select(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	start := time.Now()
	records, err := db.selectRows(ctx, query, params)
	observe("select", start, err)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (db *DB) selectRows(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}

	rows, err := db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	records := []map[string]any{}
	for rows.Next() {
		record := make(map[string]any)
		if err := rows.MapScan(record); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return records, nil
}

// Update runs an insert, update or delete statement with named parameters.
func (db *DB) Update(ctx context.Context, query string, params map[string]any) error {
	start := time.Now()
	if params == nil {
		params = map[string]any{}
	}

	_, err := db.NamedExecContext(ctx, query, params)
	if err != nil {
		err = fmt.Errorf("failed to execute statement: %w", err)
	}
	observe("update", start, err)
	return err
}

func observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.StorageOperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(op, result).Inc()

	log.Trace().Str("op", op).Str("result", result).Dur("elapsed", elapsed).Msg("storage statement")
}
