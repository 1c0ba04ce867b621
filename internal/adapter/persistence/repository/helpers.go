package repository

import (
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"oficina/internal/usecase/interfaces"
)

// translateDuplicate maps driver-level uniqueness violations to the
// storage-agnostic sentinel the use-case retry loop checks for. Everything
// else passes through untouched.
func translateDuplicate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrDuplicateCode
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		if serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return interfaces.ErrDuplicateCode
		}
	}
	// Last resort for wrapped driver errors that lost their type.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return interfaces.ErrDuplicateCode
	}
	return err
}

// likePattern builds a contains-match pattern for a user-supplied query.
func likePattern(query string) string {
	return "%" + strings.TrimSpace(query) + "%"
}
