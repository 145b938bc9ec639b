package mysql

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// MySQL server error numbers the repository distinguishes.
const (
	errNumDuplicateEntry   = 1062
	errNumLockWaitTimeout  = 1205
	errNumDeadlockDetected = 1213
)

func mysqlErrorNumber(err error) uint16 {
	var mysqlErr *gomysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return 0
	}
	return mysqlErr.Number
}

func isDuplicateEntry(err error) bool {
	return mysqlErrorNumber(err) == errNumDuplicateEntry
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, gomysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// mapStoreError marks deadlocks and lock wait timeouts as concurrent update
// conflicts and lost or refused connections as the store being unavailable,
// keeping the driver error in the chain.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case mysqlErrorNumber(err) == errNumDeadlockDetected, mysqlErrorNumber(err) == errNumLockWaitTimeout:
		return fmt.Errorf("%w: %w", domain.ErrConcurrentUpdate, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	default:
		return err
	}
}
