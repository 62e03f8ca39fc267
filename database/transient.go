package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// IsTransient reports whether err is a lock/connection conflict worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1040, // ER_CON_COUNT_ERROR: Too many connections
			1205, // ER_LOCK_WAIT_TIMEOUT: Lock wait timeout exceeded
			1213: // ER_LOCK_DEADLOCK: Deadlock found
			return true
		}
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
