package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrAmbiguousReference = errors.New("ambiguous reference")
	ErrInternal           = errors.New("internal error")
)

var (
	ErrAuthorNotFound    = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound      = fmt.Errorf("book %w", ErrNotFound)
	ErrPublisherNotFound = fmt.Errorf("publisher %w", ErrNotFound)
)
