package postgres

import (
	"context"
	"errors"
	"fmt"
	"land-catalog/internal/core/domain"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgLockNotAvailable    = "55P03"
	pgSerializationFail   = "40001"
	pgDeadlockDetected    = "40P01"
)

// isUnavailable - временные сбои инфраструктуры: нет соединения, перегрузка,
// таймауты блокировок и запросов. Такие ошибки вызывающая сторона может повторить.
func isUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgSerializationFail, pgDeadlockDetected:
			return true
		}
		// 08 - connection exception, 53 - insufficient resources, 57 - operator intervention (в т.ч. statement_timeout)
		for _, class := range []string{"08", "53", "57"} {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}

// storeError оборачивает ошибку драйвера, помечая временные сбои как domain.ErrStoreUnavailable.
func storeError(op string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

// uniqueViolation возвращает имя нарушенного ограничения уникальности.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
