package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every specific error below wraps exactly one of these, so
// callers can test either the class or the specific condition with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnauthenticated     = errors.New("unauthenticated")
)

var (
	ErrInvalidSearchType  = fmt.Errorf("%w: search_type must be one of [new, top]", ErrValidation)
	ErrInvalidRateCommand = fmt.Errorf("%w: command must be one of [Like, Dislike]", ErrValidation)
	ErrInvalidUsername    = fmt.Errorf("%w: username must be 3-30 latin letters or digits", ErrValidation)
	ErrInvalidPassword    = fmt.Errorf(
		"%w: password must be 8-16 characters and contain an uppercase letter and a digit", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: typed passwords do not match up", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email address is not valid", ErrValidation)

	ErrTitleNotFound         = fmt.Errorf("%w: title", ErrNotFound)
	ErrCategoryEmpty         = fmt.Errorf("%w: category has no titles", ErrNotFound)
	ErrNoCategoriesAvailable = fmt.Errorf("%w: no categories available", ErrNotFound)
	ErrNoServedTitle         = fmt.Errorf("%w: no fact has been served in this session", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user", ErrNotFound)

	ErrUserAlreadyExists = fmt.Errorf("%w: this login already exists", ErrConflict)
	ErrConcurrentUpdate  = fmt.Errorf("%w: concurrent update, try again", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: incorrect login or password", ErrUnauthenticated)
)
