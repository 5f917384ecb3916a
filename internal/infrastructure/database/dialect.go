package database

import (
	"fmt"
	"strings"
)

type dialect struct {
	name      string
	sqlDriver string
	schema    []string
	dsn       func(string) string
	pragmas   func(string) []string
}

func (d dialect) prepareDSN(dsn string) string {
	if d.dsn == nil {
		return dsn
	}
	return d.dsn(dsn)
}

func (d dialect) setup(dsn string) []string {
	if d.pragmas == nil {
		return nil
	}
	return d.pragmas(dsn)
}

var dialects = map[string]dialect{
	DriverSQLite: {
		name:      DriverSQLite,
		sqlDriver: "sqlite",
		schema:    sqliteSchema,
		dsn:       sqliteDSN,
		pragmas: func(dsn string) []string {
			if isMemoryDSN(dsn) {
				return nil
			}
			// WAL allows concurrent readers while the CLI and the API share a file
			return []string{"PRAGMA journal_mode = WAL"}
		},
	},
	DriverMySQL: {
		name:      DriverMySQL,
		sqlDriver: "mysql",
		schema:    mysqlSchema,
	},
	DriverPostgres: {
		name:      DriverPostgres,
		sqlDriver: "pgx",
		schema:    postgresSchema,
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[strings.ToLower(driver)]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported database driver: %s", driver)
	}
	return d, nil
}

// sqliteDSN turns foreign keys on and sets a busy timeout on every pooled
// connection, unless the caller already chose pragmas.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
