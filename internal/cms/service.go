// Package cms implements the content operations behind the JSON API:
// products, page modules and the site config singleton.
package cms

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/loganlanou/reviewhub/storage"
)

var (
	// ErrNotFound means the requested id or slug does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest means the request is missing an identifier or is
	// otherwise malformed.
	ErrInvalidRequest = errors.New("invalid request")
)

type Service struct {
	store *storage.Storage
}

func New(store *storage.Storage) *Service {
	return &Service{store: store}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// storeErr translates a missing row to ErrNotFound and wraps anything else.
func storeErr(op, what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("%s: %w", op, err)
}
