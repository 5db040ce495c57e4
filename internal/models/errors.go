package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique          = errors.New("the account name must be unique for the budget")
	ErrCategoryNameNotUnique         = errors.New("the category name must be unique for the budget")
	ErrEnvelopeNameNotUnique         = errors.New("the envelope name must be unique for the category")
	ErrSourceDoesNotEqualDestination = errors.New("source and destination accounts for a transaction must be different")
)
