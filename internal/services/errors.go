package services

import (
	"errors"
	"fmt"
)

// Expected business failures. Callers branch on these with errors.Is; anything
// else that comes out of a service is unexpected and should be treated as a
// generic recoverable fault.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
	ErrNotLoggedIn        = errors.New("no active session")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageErr hides the backend failure behind the generic storage error while
// keeping the cause in the message.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
