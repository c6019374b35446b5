package service

import (
	"strings"

	"course-admin/util/errs"
)

// translateUniqueError maps a storage-level unique index rejection onto
// the same validation message the pre-insert uniqueness check produces.
// The check-then-insert window is not locked; the index is the backstop.
func translateUniqueError(err error, columns map[string]string) error {
	if err == nil {
		return nil
	}
	text := err.Error()
	if !strings.Contains(text, "UNIQUE constraint failed") {
		return err
	}
	for column, message := range columns {
		if strings.Contains(text, column) {
			return errs.NewValidationError(message)
		}
	}
	return err
}
