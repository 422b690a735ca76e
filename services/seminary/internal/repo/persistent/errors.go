package persistent

import (
	"seminary/pkg/apperr"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translate classifies gorm errors the use cases act on. Anything else is
// passed through wrapped, to be reported as an internal failure.
func translate(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(err, apperr.KindConflict, "record already exists")
	default:
		return errors.WithStack(err)
	}
}
