package content

import "errors"

var (
	// ErrNotFound is returned when a content item does not exist or is not visible to the caller.
	ErrNotFound = errors.New("content not found")
	// ErrDuplicateName is returned when a category or tag with the same name already exists.
	ErrDuplicateName = errors.New("name already exists")
)
