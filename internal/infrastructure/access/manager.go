package access

import "context"

// Row is one result row keyed by column name.
type Row = map[string]any

// Manager executes parameterized statements. Parameters are bound by name,
// written ":name" in the statement text.
type Manager interface {
	Select(ctx context.Context, query string, params map[string]any) ([]Row, error)
	Update(ctx context.Context, query string, params map[string]any) error
}
