package services

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a lookup by user-supplied identifier yielded
// nothing. Handlers map it to a 404.
type NotFoundError struct {
	Kind  string
	Token string
}

func (e *NotFoundError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Token)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
