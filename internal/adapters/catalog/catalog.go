// Package catalog lists the tables of a live database for the sqlite,
// postgres and mysql drivers.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// SQLCatalog implements secondary.TableCatalog over a database/sql handle.
type SQLCatalog struct {
	db    *sql.DB
	query sq.SelectBuilder
}

// NewSQLCatalog creates a catalog running query to list tables. The query
// must select a single text column.
func NewSQLCatalog(db *sql.DB, query sq.SelectBuilder) *SQLCatalog {
	return &SQLCatalog{db: db, query: query}
}

// ListTables returns the names of all user tables.
func (c *SQLCatalog) ListTables(ctx context.Context) ([]string, error) {
	query, args, err := c.query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build table query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

// Close releases the underlying connection.
func (c *SQLCatalog) Close() error {
	return c.db.Close()
}
