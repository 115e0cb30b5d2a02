package apperr

import "errors"

// Error kinds shared across the service layer. Repositories translate
// storage errors into these so controllers can map them to HTTP codes.
var (
	ErrNoRecordFound   = errors.New("no record found")
	ErrDuplicateRecord = errors.New("duplicate record")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoRecordFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateRecord)
}
