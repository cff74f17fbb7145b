package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_ToSql(t *testing.T) {
	tests := []struct {
		name     string
		query    sq.SelectBuilder
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "sqlite",
			query:    SQLiteTablesQuery(),
			wantSQL:  "SELECT name FROM sqlite_master WHERE type = ? AND name NOT LIKE ? ORDER BY name",
			wantArgs: []interface{}{"table", "sqlite_%"},
		},
		{
			name:     "postgres",
			query:    PostgresTablesQuery(),
			wantSQL:  "SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() AND table_type = $1 ORDER BY table_name",
			wantArgs: []interface{}{"BASE TABLE"},
		},
		{
			name:     "mysql",
			query:    MySQLTablesQuery(),
			wantSQL:  "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_type = ? ORDER BY table_name",
			wantArgs: []interface{}{"BASE TABLE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.query.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSQLCatalog_ListTables(t *testing.T) {
	tests := []struct {
		name        string
		query       sq.SelectBuilder
		setupMock   func(sqlmock.Sqlmock)
		expected    []string
		expectError bool
	}{
		{
			name:  "postgres tables",
			query: PostgresTablesQuery(),
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"table_name"}).
					AddRow("app_userprofiles").
					AddRow("auth_user")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT table_name FROM information_schema.tables")).
					WithArgs("BASE TABLE").
					WillReturnRows(rows)
			},
			expected: []string{"app_userprofiles", "auth_user"},
		},
		{
			name:  "mysql empty schema",
			query: MySQLTablesQuery(),
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"table_name"})
				mock.ExpectQuery(regexp.QuoteMeta("WHERE table_schema = DATABASE()")).
					WithArgs("BASE TABLE").
					WillReturnRows(rows)
			},
			expected: nil,
		},
		{
			name:  "query error",
			query: PostgresTablesQuery(),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT table_name").
					WillReturnError(sql.ErrConnDone)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create mock db: %v", err)
			}
			defer db.Close()

			tt.setupMock(mock)

			tables, err := NewSQLCatalog(db, tt.query).ListTables(context.Background())
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, tables)

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestOpener_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.sqlite3")

	seed, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = seed.Exec(`
		CREATE TABLE app_userprofiles (id INTEGER PRIMARY KEY);
		CREATE TABLE auth_user (id INTEGER PRIMARY KEY AUTOINCREMENT);
	`)
	require.NoError(t, err)
	require.NoError(t, seed.Close())

	cat, err := NewOpener().Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer cat.Close()

	tables, err := cat.ListTables(context.Background())
	require.NoError(t, err)

	// sqlite_sequence is created by AUTOINCREMENT and filtered out
	assert.Equal(t, []string{"app_userprofiles", "auth_user"}, tables)
}

func TestOpener_UnsupportedDriver(t *testing.T) {
	_, err := NewOpener().Open(context.Background(), "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported driver "oracle"`)
}

func TestOpener_UsesRegisteredDriver(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	var gotDriver, gotDSN string
	opener := &Opener{open: func(driverName, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dsn
		return db, nil
	}}

	cat, err := opener.Open(context.Background(), "postgres", "postgres://localhost/app")
	require.NoError(t, err)
	defer cat.Close()

	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, "postgres://localhost/app", gotDSN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpener_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)
	mock.ExpectClose()

	opener := &Opener{open: func(string, string) (*sql.DB, error) { return db, nil }}

	_, err = opener.Open(context.Background(), "mysql", "user@/db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}
