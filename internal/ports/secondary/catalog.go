package secondary

import "context"

// TableCatalog defines the secondary port for listing the tables of a
// database.
type TableCatalog interface {
	// ListTables returns the names of all user tables.
	ListTables(ctx context.Context) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}

// CatalogOpener opens a TableCatalog for a driver and DSN.
type CatalogOpener interface {
	Open(ctx context.Context, driver, dsn string) (TableCatalog, error)
}
