package catalog

import (
	sq "github.com/Masterminds/squirrel"
)

// SQLiteTablesQuery lists user tables from sqlite_master.
func SQLiteTablesQuery() sq.SelectBuilder {
	return sq.Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table"}).
		Where(sq.NotLike{"name": "sqlite_%"}).
		OrderBy("name").
		PlaceholderFormat(sq.Question)
}

// PostgresTablesQuery lists base tables of the current schema.
func PostgresTablesQuery() sq.SelectBuilder {
	return sq.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = current_schema()").
		Where(sq.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name").
		PlaceholderFormat(sq.Dollar)
}

// MySQLTablesQuery lists base tables of the connected database.
func MySQLTablesQuery() sq.SelectBuilder {
	return sq.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(sq.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name").
		PlaceholderFormat(sq.Question)
}
