package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// notFoundOr converts a record-not-found lookup failure into the
// domain's NotFound error; anything else passes through untouched.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}
