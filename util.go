package genopack

// WhichSQLiteDriver reports the SQLite driver the store was compiled
// against: "sqlite3" (cgo) or "sqlite" (pure Go).
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
