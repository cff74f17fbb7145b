// Package scaffold assembles the generated GORM source file: scaffolding
// blocks around the rendered declarations, plus the diagnostics text.
package scaffold

import (
	"strings"

	"github.com/example/django2gorm/internal/models"
)

// Supported GORM drivers for the import block and usage example.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Drivers lists the supported drivers in import-block order.
var Drivers = []string{DriverPostgres, DriverMySQL, DriverSQLite}

// exampleDSNs are the placeholder connection strings of the usage example.
var exampleDSNs = map[string]string{
	DriverPostgres: "host=localhost user=USER password=PWD dbname=DBNAME port=5432 TimeZone=Europe/London",
	DriverMySQL:    "USER:PWD@tcp(127.0.0.1:3306)/DBNAME?charset=utf8mb4&parseTime=True&loc=Local",
	DriverSQLite:   "db.sqlite3",
}

// IsDriver reports whether name is a supported driver.
func IsDriver(name string) bool {
	_, ok := exampleDSNs[name]
	return ok
}

// Options toggle the scaffolding around generated declarations.
type Options struct {
	IncludeScaffolding bool   // package clause, imports and usage example
	AutoAddUser        bool   // default User model when the input has none
	AutoAddGroup       bool   // default Group model when the input has none
	PackageName        string // defaults to "main"
	Driver             string // defaults to postgres
	Gofmt              bool   // run go/format over the result
}

// DefaultOptions enables every block, like the command line does.
func DefaultOptions() Options {
	return Options{
		IncludeScaffolding: true,
		AutoAddUser:        true,
		AutoAddGroup:       true,
		PackageName:        "main",
		Driver:             DriverPostgres,
	}
}

// Output is the assembled file and the diagnostics that go with it.
type Output struct {
	Text        string
	Diagnostics []models.Diagnostic
}

// DiagnosticsText returns the content of the .errors file, or "" when
// nothing was recorded.
func (o *Output) DiagnosticsText() string {
	if len(o.Diagnostics) == 0 {
		return ""
	}
	lines := make([]string, len(o.Diagnostics))
	for i, d := range o.Diagnostics {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

type driverImport struct {
	Name    string
	Enabled bool
}

type importsData struct {
	Package string
	Driver  string
	Drivers []driverImport
}

type usageData struct {
	Driver string
	DSN    string
}
