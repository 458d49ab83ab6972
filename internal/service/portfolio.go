package service

import (
	"errors"

	"skillport-api/internal/apperr"
	"skillport-api/internal/storage"
)

// checkOwner rejects rows that do not name a user.
func checkOwner(userID int64) error {
	if userID <= 0 {
		return apperr.Validation("userId is required")
	}
	return nil
}

// createError maps a failed insert of a user-owned row.
func createError(msg string, err error) error {
	if errors.Is(err, storage.ErrInvalidReference) {
		return apperr.Validation("User does not exist")
	}
	return apperr.Server(msg, err)
}
