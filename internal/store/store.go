// Package store provides the persistence capability the rest of the
// application depends on: parameterized statements returning plain row
// mappings. Implementations are selected at startup by configuration and
// handed down by reference; there is no process-wide singleton.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoRows is returned by Get when the statement matches nothing.
var ErrNoRows = errors.New("store: no rows")

// Row is one result row keyed by column name.
type Row map[string]any

// Querier executes parameterized SQL statements.
type Querier interface {
	// Get runs a statement expected to return at most one row.
	Get(ctx context.Context, query string, args ...any) (Row, error)
	// All runs a statement and returns every matching row.
	All(ctx context.Context, query string, args ...any) ([]Row, error)
	// Run executes a statement and returns the number of rows affected.
	Run(ctx context.Context, query string, args ...any) (int64, error)
}

// Typed accessors for Row values. Drivers differ in the concrete Go types
// they hand back, so each accessor folds the common representations.

func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func (r Row) Bool(key string) bool {
	v, _ := r[key].(bool)
	return v
}

func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func (r Row) Time(key string) time.Time {
	v, _ := r[key].(time.Time)
	return v
}
