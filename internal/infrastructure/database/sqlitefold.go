package database

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

// SQLiteFoldFunc is the SQL function that case-folds text on SQLite
// connections opened through SQLiteDialector. The built-in LOWER only folds
// ASCII letters.
const SQLiteFoldFunc = "casefold"

const sqliteDriverName = "sqlite3_casedesk"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteFoldFunc, textnorm.Fold, true)
		},
	})
}

// SQLiteDialector opens dsn with SQLiteFoldFunc available.
func SQLiteDialector(dsn string) gorm.Dialector {
	return &sqlite.Dialector{DriverName: sqliteDriverName, DSN: dsn}
}
