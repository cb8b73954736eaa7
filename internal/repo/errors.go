package repo

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/lib/pq"
)

const (
	uniqueViolation             = "23505"
	paymentTransactionIDUniqIdx = "payments_transaction_id_uidx"

	classDataException      pq.ErrorClass = "22"
	classIntegrityViolation pq.ErrorClass = "23"
)

// dbError оборачивает ошибку запроса. Ошибки данных и нарушения ограничений
// повторять бессмысленно, они помечаются entities.ErrInvalidData.
func dbError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case classDataException, classIntegrityViolation:
			return fmt.Errorf("%s: %w: %w", op, entities.ErrInvalidData, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDuplicatePayment(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == paymentTransactionIDUniqIdx
}
