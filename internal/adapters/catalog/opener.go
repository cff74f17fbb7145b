package catalog

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/django2gorm/internal/ports/secondary"
)

type dialect struct {
	sqlDriver string
	query     func() sq.SelectBuilder
}

var dialects = map[string]dialect{
	"sqlite":   {sqlDriver: "sqlite3", query: SQLiteTablesQuery},
	"postgres": {sqlDriver: "pgx", query: PostgresTablesQuery},
	"mysql":    {sqlDriver: "mysql", query: MySQLTablesQuery},
}

// Opener implements secondary.CatalogOpener.
type Opener struct {
	open func(driverName, dsn string) (*sql.DB, error)
}

// NewOpener creates an opener backed by database/sql.
func NewOpener() *Opener {
	return &Opener{open: sql.Open}
}

// Open connects to dsn with the database/sql driver registered for driver
// and verifies the connection.
func (o *Opener) Open(ctx context.Context, driver, dsn string) (secondary.TableCatalog, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := o.open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewSQLCatalog(db, d.query()), nil
}
