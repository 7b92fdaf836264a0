package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the ledger. Every returned error wraps one of them.
var (
	ErrStorage    = errors.New("storage error")
	ErrParse      = errors.New("parse error")
	ErrValidation = errors.New("validation error")

	// ErrSchema means the record file header is not the expected column list.
	ErrSchema = fmt.Errorf("%w: schema mismatch", ErrParse)
)
